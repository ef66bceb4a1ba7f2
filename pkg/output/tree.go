package output

import (
	"github.com/charmbracelet/lipgloss/tree"
)

// TreeGroup is one branch of a rendered tree.
type TreeGroup struct {
	Name   string
	Leaves []string
}

// RenderTree renders groups as a lipgloss tree under root.
// Groups and leaves keep the order they are given in.
func RenderTree(root string, groups []TreeGroup) string {
	t := tree.Root(root).
		RootStyle(treeRootStyle).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(treeEnumeratorStyle)

	for _, g := range groups {
		branch := tree.New().
			Root(treeGroupStyle.Render(g.Name)).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(treeEnumeratorStyle).
			ItemStyle(treeLeafStyle)
		for _, leaf := range g.Leaves {
			branch.Child(leaf)
		}
		t.Child(branch)
	}

	return t.String()
}
