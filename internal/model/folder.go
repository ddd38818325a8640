package model

// Folder is a read-through projection of an OmniFocus folder. Children are
// serialized recursively with the same active-state policy applied at every
// level.
type Folder struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status Status `json:"status"`

	// EffectivelyActive considers the folder's own status and that of its
	// ancestors.
	EffectivelyActive bool `json:"effectivelyActive"`

	// Parent is the parent folder's name, or nil for top-level folders.
	Parent *string `json:"parent"`

	// ProjectCount is the number of projects directly in this folder.
	ProjectCount int `json:"projectCount"`

	// RemainingProjectCount is the number of directly contained projects
	// that are not dropped or done.
	RemainingProjectCount int `json:"remainingProjectCount"`

	// FolderCount is the number of direct child folders before filtering.
	FolderCount int `json:"folderCount"`

	// Children holds the serialized child folders that pass the
	// active-state filter.
	Children []Folder `json:"children"`
}

// FolderFilters controls folder list and view operations.
type FolderFilters struct {
	// IncludeDropped keeps folders that are not effectively active, at
	// every level of the hierarchy.
	IncludeDropped bool
}

// Perspective identifies a built-in or user-defined OmniFocus perspective.
type Perspective struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
