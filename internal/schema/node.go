package schema

import (
	"fmt"
	"path"
	"slices"

	"gopkg.in/yaml.v3"
)

// Node is one directory in a template tree. Children keep definition order.
type Node struct {
	Name     string
	Children []Node
}

// UnmarshalYAML accepts either a bare directory name or a mapping with
// "name" and "children".
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		n.Name = value.Value
		n.Children = nil
		return nil
	case yaml.MappingNode:
		var raw struct {
			Name     string `yaml:"name"`
			Children []Node `yaml:"children"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		n.Name = raw.Name
		n.Children = raw.Children
		return nil
	default:
		return fmt.Errorf("line %d: directory node must be a name or a mapping", value.Line)
	}
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Node{Name: n.Name, Children: cloneNodes(n.Children)}
	}
	return out
}

// Template is a directory tree plus the seed files created inside it.
// Seed paths are slash-separated and relative to the template root.
type Template struct {
	Tree  []Node
	Files []string
}

func (t Template) clone() Template {
	return Template{Tree: cloneNodes(t.Tree), Files: slices.Clone(t.Files)}
}

// Dirs returns every directory of the tree as a slash-separated relative
// path, parents before children, in definition order.
func (t Template) Dirs() []string {
	var dirs []string
	var walk func(prefix string, nodes []Node)
	walk = func(prefix string, nodes []Node) {
		for _, n := range nodes {
			p := path.Join(prefix, n.Name)
			dirs = append(dirs, p)
			walk(p, n.Children)
		}
	}
	walk("", t.Tree)
	return dirs
}

// Leaves returns the directories that have no children.
func (t Template) Leaves() []string {
	var leaves []string
	var walk func(prefix string, nodes []Node)
	walk = func(prefix string, nodes []Node) {
		for _, n := range nodes {
			p := path.Join(prefix, n.Name)
			if len(n.Children) == 0 {
				leaves = append(leaves, p)
				continue
			}
			walk(p, n.Children)
		}
	}
	walk("", t.Tree)
	return leaves
}
