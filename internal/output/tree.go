package output

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// Tree characters
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// statusColumn is where file statuses start on a tree line.
	statusColumn = 56
)

// manifestNode is a directory or a manifest file in the feature tree.
// Directories have no entry.
type manifestNode struct {
	name     string
	entry    *ManifestEntry
	children []*manifestNode
}

// rank orders the children of a directory: the aggregator, then
// subdirectories, then rendered sources.
func (n *manifestNode) rank() int {
	switch {
	case n.entry == nil:
		return 1
	case n.entry.Kind == KindAggregator:
		return 0
	default:
		return 2
	}
}

func (n *manifestNode) dir(name string) *manifestNode {
	for _, c := range n.children {
		if c.entry == nil && c.name == name {
			return c
		}
	}
	d := &manifestNode{name: name}
	n.children = append(n.children, d)
	return d
}

// RenderManifestTree renders the manifest as a tree rooted at the feature
// root. Each file shows its status in an aligned column and sources name the
// template they were rendered from. A footer counts files by kind.
func RenderManifestTree(m Manifest) string {
	if len(m.Files) == 0 {
		return ""
	}

	root := &manifestNode{name: m.Root}
	kinds := map[string]int{}
	for i := range m.Files {
		f := &m.Files[i]
		kinds[f.Kind]++

		rel, err := filepath.Rel(m.Root, f.Path)
		if err != nil || strings.HasPrefix(rel, "..") {
			rel = f.Path
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")

		current := root
		for _, part := range parts[:len(parts)-1] {
			current = current.dir(part)
		}
		current.children = append(current.children, &manifestNode{name: parts[len(parts)-1], entry: f})
	}

	sortManifestTree(root)

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(filepath.ToSlash(m.Root) + "/"))
	sb.WriteString("\n")
	for i, child := range root.children {
		renderManifestNode(&sb, child, "", i == len(root.children)-1)
	}
	sb.WriteString(StyleDim.Render(kindSummary(kinds)))
	sb.WriteString("\n")
	return sb.String()
}

func sortManifestTree(n *manifestNode) {
	sort.SliceStable(n.children, func(i, j int) bool {
		a, b := n.children[i], n.children[j]
		if a.rank() != b.rank() {
			return a.rank() < b.rank()
		}
		return a.name < b.name
	})
	for _, c := range n.children {
		sortManifestTree(c)
	}
}

func renderManifestNode(sb *strings.Builder, n *manifestNode, prefix string, isLast bool) {
	connector := treeEdge
	childPrefix := prefix + treeVert
	if isLast {
		connector = treeLast
		childPrefix = prefix + treeSpace
	}

	if n.entry == nil {
		sb.WriteString(StyleDim.Render(prefix+connector) + n.name + "/\n")
		for i, c := range n.children {
			renderManifestNode(sb, c, childPrefix, i == len(n.children)-1)
		}
		return
	}

	plain := prefix + connector + n.name
	line := StyleDim.Render(prefix+connector) + StyleNoun.Render(n.name)
	if n.entry.Template != "" {
		plain += " ← " + n.entry.Template
		line += StyleDim.Render(" ← " + n.entry.Template)
	}

	padding := statusColumn - len([]rune(plain))
	if padding < 2 {
		padding = 2
	}
	sb.WriteString(line + strings.Repeat(" ", padding) + statusStyle(n.entry.Status).Render(n.entry.Status) + "\n")
}

// kindSummary reads like "3 aggregators, 8 sources".
func kindSummary(kinds map[string]int) string {
	plural := func(n int, word string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, word)
		}
		return fmt.Sprintf("%d %ss", n, word)
	}
	return plural(kinds[KindAggregator], KindAggregator) + ", " + plural(kinds[KindSource], KindSource)
}
