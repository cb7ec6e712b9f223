package projectconfig

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Entry is one node of the declarative structure description: a directory
// (possibly with children) or an empty placeholder file.
type Entry struct {
	Name     string
	IsDir    bool
	Children []Entry
}

// Structure is an ordered list of top-level structure entries. It decodes
// the recursive YAML shape
//
//	structure:
//	  - src                  # plain string: directory
//	  - tests: [test_app.py] # mapping: directory with children
//	  - docs:
//	      - guides:          # mappings nest arbitrarily deep
//	          - index.md
//
// Plain strings at the top level are directories; plain strings nested
// under a directory are files. Any other shape is rejected with an error
// naming the offending line.
type Structure []Entry

// UnmarshalYAML decodes and eagerly validates a structure description.
func (s *Structure) UnmarshalYAML(node *yaml.Node) error {
	entries, err := decodeEntryList(node, true)
	if err != nil {
		return err
	}
	*s = entries
	return nil
}

// decodeEntryList decodes a YAML sequence of entries. topLevel controls how
// plain strings are read: directories at the top level, files below it.
func decodeEntryList(node *yaml.Node, topLevel bool) ([]Entry, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("structure: line %d: expected a list, got %s", node.Line, kindName(node.Kind))
	}

	var entries []Entry
	for _, item := range node.Content {
		decoded, err := decodeEntry(item, topLevel)
		if err != nil {
			return nil, err
		}
		entries = append(entries, decoded...)
	}
	return entries, nil
}

// decodeEntry decodes a single sequence item. A mapping item may declare
// several directories at once, so one item can yield multiple entries.
func decodeEntry(node *yaml.Node, topLevel bool) ([]Entry, error) {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.ScalarNode:
		name, err := scalarName(node)
		if err != nil {
			return nil, err
		}
		return []Entry{{Name: name, IsDir: topLevel}}, nil

	case yaml.MappingNode:
		var entries []Entry
		for i := 0; i < len(node.Content); i += 2 {
			key, val := node.Content[i], resolveAlias(node.Content[i+1])

			name, err := scalarName(key)
			if err != nil {
				return nil, err
			}

			dir := Entry{Name: name, IsDir: true}
			switch val.Kind {
			case yaml.SequenceNode:
				children, err := decodeEntryList(val, false)
				if err != nil {
					return nil, err
				}
				dir.Children = children
			case yaml.ScalarNode:
				// A null value declares a directory with no children.
				if val.Tag == "!!null" {
					break
				}
				return nil, fmt.Errorf("structure: line %d: directory %q must map to a list of entries, got scalar %q", val.Line, name, val.Value)
			default:
				return nil, fmt.Errorf("structure: line %d: directory %q must map to a list of entries, got %s", val.Line, name, kindName(val.Kind))
			}
			entries = append(entries, dir)
		}
		return entries, nil

	default:
		return nil, fmt.Errorf("structure: line %d: entry must be a name or a directory mapping, got %s", node.Line, kindName(node.Kind))
	}
}

func scalarName(node *yaml.Node) (string, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.ScalarNode || node.Tag != "!!str" {
		return "", fmt.Errorf("structure: line %d: entry name must be a string", node.Line)
	}
	if node.Value == "" {
		return "", fmt.Errorf("structure: line %d: entry name must not be empty", node.Line)
	}
	return node.Value, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
