package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nhle/omnifocus-cli/internal/dates"
	"github.com/nhle/omnifocus-cli/internal/model"
)

// optString returns a pointer to the string argument, or nil when the key
// is absent. Unlike GetString this distinguishes "" from missing.
func optString(req mcp.CallToolRequest, key string) *string {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil
	}
	return &s
}

func optBool(req mcp.CallToolRequest, key string) *bool {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return nil
	}
	b, ok := raw.(bool)
	if !ok {
		return nil
	}
	return &b
}

// optInt reads a numeric argument. JSON numbers decode as float64.
func optInt(req mcp.CallToolRequest, key string) *int {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return nil
	}
	f, ok := raw.(float64)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}

func optStringSlice(req mcp.CallToolRequest, key string) *[]string {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return &out
}

// datePatchArg resolves a tri-state date argument: absent leaves the field
// untouched, null or an empty string clears it, any other string must
// parse as a date.
func datePatchArg(req mcp.CallToolRequest, key string) (model.DatePatch, error) {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return model.DatePatch{}, nil
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return model.ClearDate(), nil
	}
	iso, err := dates.ParseDateTime(s)
	if err != nil {
		return model.DatePatch{}, err
	}
	return model.SetDate(iso), nil
}

// statusArg parses an optional status argument; empty means unset.
func statusArg(req mcp.CallToolRequest, key string) (model.Status, error) {
	s := req.GetString(key, "")
	if s == "" {
		return "", nil
	}
	return model.ParseStatus(s)
}
