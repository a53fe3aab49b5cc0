package templates

import (
	"sort"
	tparse "text/template/parse"

	"github.com/rustlay/cli/internal/naming"
)

// knownSymbols are the only fields a template may reference.
var knownSymbols = map[string]bool{
	naming.SymbolRaw:    true,
	naming.SymbolSnake:  true,
	naming.SymbolPascal: true,
}

// Symbols returns the distinct top-level fields a template references, sorted.
func Symbols(t Template) ([]string, error) {
	parsed := t.parsed
	if parsed == nil {
		var err error
		parsed, err = parseBody(t.Name, t.Body)
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool)
	for _, tmpl := range parsed.Templates() {
		if tmpl.Tree != nil {
			collectFields(tmpl.Tree.Root, seen)
		}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

// UndefinedSymbols returns the referenced fields that no name context provides.
func UndefinedSymbols(t Template) ([]string, error) {
	syms, err := Symbols(t)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, s := range syms {
		if !knownSymbols[s] {
			out = append(out, s)
		}
	}
	return out, nil
}

func collectFields(node tparse.Node, seen map[string]bool) {
	switch n := node.(type) {
	case *tparse.ListNode:
		if n == nil {
			return
		}
		for _, c := range n.Nodes {
			collectFields(c, seen)
		}
	case *tparse.ActionNode:
		collectFields(n.Pipe, seen)
	case *tparse.PipeNode:
		if n == nil {
			return
		}
		for _, cmd := range n.Cmds {
			collectFields(cmd, seen)
		}
	case *tparse.CommandNode:
		for _, arg := range n.Args {
			collectFields(arg, seen)
		}
	case *tparse.FieldNode:
		if len(n.Ident) > 0 {
			seen[n.Ident[0]] = true
		}
	case *tparse.IdentifierNode:
		if knownSymbols[n.Ident] {
			seen[n.Ident] = true
		}
	case *tparse.IfNode:
		collectBranch(&n.BranchNode, seen)
	case *tparse.RangeNode:
		collectBranch(&n.BranchNode, seen)
	case *tparse.WithNode:
		collectBranch(&n.BranchNode, seen)
	case *tparse.TemplateNode:
		collectFields(n.Pipe, seen)
	}
}

func collectBranch(b *tparse.BranchNode, seen map[string]bool) {
	collectFields(b.Pipe, seen)
	collectFields(b.List, seen)
	collectFields(b.ElseList, seen)
}
