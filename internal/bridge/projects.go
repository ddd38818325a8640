package bridge

import (
	"context"
	"fmt"

	"github.com/nhle/omnifocus-cli/internal/model"
	"github.com/nhle/omnifocus-cli/internal/stats"
)

// ListProjects returns all projects passing the given filters.
func (o *OmniFocus) ListProjects(ctx context.Context, f model.ProjectFilters) ([]model.Project, error) {
	s := newScript()
	s.stmt(0, "const results = [];")
	s.stmt(0, "for (const project of flattenedProjects) {")
	for _, cond := range compileProjectFilters(f) {
		s.stmt(1, cond)
	}
	s.stmt(1, "results.push(serializeProject(project));")
	s.stmt(0, "}")
	s.stmt(0, "return JSON.stringify(results);")

	var projects []model.Project
	if err := o.evalInto(ctx, s.String(), o.timeout, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject resolves idOrName against the flattened project collection and
// returns the matching project.
func (o *OmniFocus) GetProject(ctx context.Context, idOrName string) (*model.Project, error) {
	s := newScript()
	s.stmtf(0, "const project = findProject(%s);", quote(idOrName))
	s.stmt(0, "return JSON.stringify(serializeProject(project));")

	var project model.Project
	if err := o.evalInto(ctx, s.String(), o.timeout, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a project, top-level by default or inside the named
// folder when one is given.
func (o *OmniFocus) CreateProject(ctx context.Context, opts model.CreateProjectOptions) (*model.Project, error) {
	if opts.Name == "" {
		return nil, model.NewValidationError("project name is required")
	}

	s := newScript()
	if opts.Folder != nil {
		s.stmtf(0, "const targetFolder = findByName(flattenedFolders, %s, \"Folder\");",
			quote(*opts.Folder))
		s.stmtf(0, "const project = new Project(%s, targetFolder);", quote(opts.Name))
	} else {
		s.stmtf(0, "const project = new Project(%s);", quote(opts.Name))
	}
	if opts.Note != nil {
		s.stmtf(0, "project.note = %s;", quote(*opts.Note))
	}
	if opts.Sequential != nil {
		s.stmtf(0, "project.sequential = %t;", *opts.Sequential)
	}
	if opts.Status != "" {
		s.stmtf(0, "project.status = stringToProjectStatus(%s);", quote(string(opts.Status)))
	}
	if len(opts.Tags) > 0 {
		s.stmtf(0, "assignTags(project, %s);", quoteList(opts.Tags))
	}
	s.stmt(0, "return JSON.stringify(serializeProject(project));")

	var project model.Project
	if err := o.evalInto(ctx, s.String(), o.timeout, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject applies a partial update to the project resolved from
// idOrName and returns the project's new state.
func (o *OmniFocus) UpdateProject(ctx context.Context, idOrName string, opts model.UpdateProjectOptions) (*model.Project, error) {
	s := newScript()
	s.stmtf(0, "const project = findProject(%s);", quote(idOrName))
	for _, stmt := range compileProjectUpdates(opts) {
		s.stmt(0, stmt)
	}
	s.stmt(0, "return JSON.stringify(serializeProject(project));")

	var project model.Project
	if err := o.evalInto(ctx, s.String(), o.timeout, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes the project resolved from idOrName.
func (o *OmniFocus) DeleteProject(ctx context.Context, idOrName string) error {
	s := newScript()
	s.stmtf(0, "deleteObject(findProject(%s));", quote(idOrName))
	s.stmt(0, "return JSON.stringify({deleted: true});")

	_, err := o.eval(ctx, s.String(), o.timeout)
	return err
}

// GetProjectStats aggregates the full project collection, including dropped
// projects, into cross-cutting statistics.
func (o *OmniFocus) GetProjectStats(ctx context.Context) (*model.ProjectStats, error) {
	projects, err := o.ListProjects(ctx, model.ProjectFilters{IncludeDropped: true})
	if err != nil {
		return nil, fmt.Errorf("loading projects for stats: %w", err)
	}
	result := stats.ComputeProjectStats(projects)
	return &result, nil
}
