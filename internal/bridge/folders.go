package bridge

import (
	"context"

	"github.com/nhle/omnifocus-cli/internal/model"
)

// ListFolders returns the top-level folders with their children serialized
// recursively. The active-state filter applies at every level: folders that
// are not effectively active are skipped unless IncludeDropped is set.
func (o *OmniFocus) ListFolders(ctx context.Context, f model.FolderFilters) ([]model.Folder, error) {
	s := newScript()
	s.stmt(0, "const results = [];")
	s.stmt(0, "for (const folder of folders) {")
	if !f.IncludeDropped {
		s.stmt(1, "if (!folder.effectiveActive) continue;")
	}
	s.stmtf(1, "results.push(serializeFolder(folder, %t));", f.IncludeDropped)
	s.stmt(0, "}")
	s.stmt(0, "return JSON.stringify(results);")

	var result []model.Folder
	if err := o.evalInto(ctx, s.String(), o.timeout, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetFolder resolves idOrName against the flattened folder collection and
// returns the matching folder with recursively serialized children.
func (o *OmniFocus) GetFolder(ctx context.Context, idOrName string, f model.FolderFilters) (*model.Folder, error) {
	s := newScript()
	s.stmtf(0, "const folder = findFolder(%s);", quote(idOrName))
	s.stmtf(0, "return JSON.stringify(serializeFolder(folder, %t));", f.IncludeDropped)

	var folder model.Folder
	if err := o.evalInto(ctx, s.String(), o.timeout, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}
