package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/omnifocus-cli/internal/bridge"
)

func TestSearchTools(t *testing.T) {
	matched, err := searchTools("tag")
	require.NoError(t, err)
	var names []string
	for _, m := range matched {
		names = append(names, m.Name)
	}
	assert.Contains(t, names, "list_tags")
	assert.Contains(t, names, "get_tag_stats")
	assert.NotContains(t, names, "list_folders")
}

func TestSearchToolsCaseInsensitive(t *testing.T) {
	matched, err := searchTools("STATISTICS")
	require.NoError(t, err)
	var names []string
	for _, m := range matched {
		names = append(names, m.Name)
	}
	assert.ElementsMatch(t,
		[]string{"get_task_stats", "get_project_stats", "get_tag_stats"}, names)
}

func TestSearchToolsMatchAll(t *testing.T) {
	matched, err := searchTools(".*")
	require.NoError(t, err)
	assert.Len(t, matched, len(toolRegistry))
}

func TestSearchToolsInvalidPattern(t *testing.T) {
	_, err := searchTools("(unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestRegistryCoversEveryRegisteredTool(t *testing.T) {
	s := New(bridge.New(nil), nil)

	var registered []string
	for _, st := range s.taskTools() {
		registered = append(registered, st.Tool.Name)
	}
	for _, st := range s.projectTools() {
		registered = append(registered, st.Tool.Name)
	}
	for _, st := range s.tagTools() {
		registered = append(registered, st.Tool.Name)
	}
	for _, st := range s.otherTools() {
		registered = append(registered, st.Tool.Name)
	}

	var listed []string
	for _, t := range toolRegistry {
		listed = append(listed, t.Name)
	}
	assert.ElementsMatch(t, listed, registered)

	for _, name := range registered {
		assert.NotEmpty(t, registryDescription(name), "missing description for %s", name)
	}
}
