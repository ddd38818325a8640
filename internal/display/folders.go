package display

import (
	"fmt"
	"strings"

	"github.com/nhle/omnifocus-cli/internal/model"
	"github.com/nhle/omnifocus-cli/internal/theme"
)

func folderLine(folder model.Folder, depth int) {
	indent := strings.Repeat("  ", depth)
	name := theme.BoldStyle.Render(folder.Name)
	if folder.Status == "dropped" {
		name = theme.MutedStyle.Strikethrough(true).Render(folder.Name)
	}
	counts := theme.MutedStyle.Render(fmt.Sprintf("(%d %s, %d remaining)",
		folder.ProjectCount, Pluralize(folder.ProjectCount, "project"),
		folder.RemainingProjectCount))
	fmt.Fprintf(out, "%s%s %s\n", indent, name, counts)
	for _, child := range folder.Children {
		folderLine(child, depth+1)
	}
}

// FolderList prints the folder hierarchy as an indented tree.
func FolderList(folders []model.Folder) {
	listHeader(len(folders), "folder")
	for _, folder := range folders {
		folderLine(folder, 0)
	}
	fmt.Fprintln(out)
}

// FolderDetails prints a single folder with its subtree.
func FolderDetails(folder model.Folder) {
	fmt.Fprintf(out, "\n%s\n", theme.BoldStyle.Underline(true).Render(folder.Name))
	fmt.Fprintln(out, theme.MutedStyle.Render("ID:       ")+folder.ID)
	fmt.Fprintln(out, theme.MutedStyle.Render("Status:   ")+string(folder.Status))
	fmt.Fprintln(out, theme.MutedStyle.Render("Projects: ")+
		fmt.Sprintf("%d (%d remaining)", folder.ProjectCount, folder.RemainingProjectCount))
	fmt.Fprintln(out, theme.MutedStyle.Render("Folders:  ")+fmt.Sprintf("%d", folder.FolderCount))
	if len(folder.Children) > 0 {
		fmt.Fprintln(out)
		for _, child := range folder.Children {
			folderLine(child, 1)
		}
	}
	fmt.Fprintln(out)
}
