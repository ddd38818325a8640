package bridge

import (
	"context"
	"fmt"

	"github.com/nhle/omnifocus-cli/internal/model"
	"github.com/nhle/omnifocus-cli/internal/stats"
)

// listAllTags fetches every tag's serialized form. Filtering and sorting
// happen on this side of the bridge.
func (o *OmniFocus) listAllTags(ctx context.Context, activeOnly bool) ([]model.Tag, error) {
	s := newScript()
	s.stmt(0, "const results = [];")
	s.stmt(0, "for (const tag of flattenedTags) {")
	s.stmtf(1, "results.push(serializeTag(tag, %t));", activeOnly)
	s.stmt(0, "}")
	s.stmt(0, "return JSON.stringify(results);")

	var tags []model.Tag
	if err := o.evalInto(ctx, s.String(), o.timeout, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// ListTags returns tags with usage information, optionally restricted to
// tags unused for a number of days, sorted per the requested order.
func (o *OmniFocus) ListTags(ctx context.Context, opts model.TagListOptions) ([]model.Tag, error) {
	tags, err := o.listAllTags(ctx, opts.ActiveOnly)
	if err != nil {
		return nil, err
	}
	if opts.UnusedDays > 0 {
		tags = stats.FilterUnusedTags(tags, opts.UnusedDays, o.now())
	}
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = model.TagSortName
	}
	stats.SortTags(tags, sortBy)
	return tags, nil
}

// GetTag resolves a tag by id, full path (ancestor names joined by "/"), or
// bare name. A bare name matching several tags fails with an ambiguous-match
// error listing every candidate's path and id.
func (o *OmniFocus) GetTag(ctx context.Context, idOrName string) (*model.Tag, error) {
	s := newScript()
	s.stmtf(0, "const tag = findTagByIdOrPath(%s);", quote(idOrName))
	s.stmt(0, "return JSON.stringify(serializeTag(tag, false));")

	var tag model.Tag
	if err := o.evalInto(ctx, s.String(), o.timeout, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// CreateTag creates a tag, top-level by default or under the resolved
// parent when one is given.
func (o *OmniFocus) CreateTag(ctx context.Context, opts model.CreateTagOptions) (*model.Tag, error) {
	if opts.Name == "" {
		return nil, model.NewValidationError("tag name is required")
	}

	s := newScript()
	if opts.Parent != nil {
		s.stmtf(0, "const parentTag = findTagByIdOrPath(%s);", quote(*opts.Parent))
		s.stmtf(0, "const tag = new Tag(%s, parentTag);", quote(opts.Name))
	} else {
		s.stmtf(0, "const tag = new Tag(%s);", quote(opts.Name))
	}
	if opts.Status != "" {
		s.stmtf(0, "tag.status = stringToTagStatus(%s);", quote(string(opts.Status)))
	}
	s.stmt(0, "return JSON.stringify(serializeTag(tag, false));")

	var tag model.Tag
	if err := o.evalInto(ctx, s.String(), o.timeout, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag applies a partial update to the tag resolved from idOrName and
// returns the tag's new state.
func (o *OmniFocus) UpdateTag(ctx context.Context, idOrName string, opts model.UpdateTagOptions) (*model.Tag, error) {
	s := newScript()
	s.stmtf(0, "const tag = findTagByIdOrPath(%s);", quote(idOrName))
	for _, stmt := range compileTagUpdates(opts) {
		s.stmt(0, stmt)
	}
	s.stmt(0, "return JSON.stringify(serializeTag(tag, false));")

	var tag model.Tag
	if err := o.evalInto(ctx, s.String(), o.timeout, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes the tag resolved from idOrName.
func (o *OmniFocus) DeleteTag(ctx context.Context, idOrName string) error {
	s := newScript()
	s.stmtf(0, "deleteObject(findTagByIdOrPath(%s));", quote(idOrName))
	s.stmt(0, "return JSON.stringify({deleted: true});")

	_, err := o.eval(ctx, s.String(), o.timeout)
	return err
}

// GetTagStats aggregates the full tag collection into usage statistics.
func (o *OmniFocus) GetTagStats(ctx context.Context) (*model.TagStats, error) {
	tags, err := o.listAllTags(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading tags for stats: %w", err)
	}
	result := stats.ComputeTagStats(tags, o.now())
	return &result, nil
}
