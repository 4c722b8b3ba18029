package decoder

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dusksociety/dsm/pkg/records"
)

// YAML decodes the first document of a YAML stream into an Input.
//
// Unquoted dates and binary scalars are kept as their literal text, so a
// "timeline: 2025-03-01" entry reaches the validator as a string.
func YAML(r io.Reader) (records.Input, error) {
	body, err := readLimited(r)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(body, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrNotObject)
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, root.ShortTag())
	}

	v, err := nodeValue(root)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return records.Input(v.(map[string]any)), nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func nodeValue(n *yaml.Node) (any, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.MappingNode:
		return mappingValue(n)

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		return out, nil

	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!str", "!!timestamp", "!!binary":
			return n.Value, nil
		default:
			var v any
			if err := n.Decode(&v); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return v, nil
		}

	default:
		return nil, fmt.Errorf("line %d: unsupported node", n.Line)
	}
}

// mappingValue decodes a mapping node. Keys must be strings and may appear
// once. Merge keys ("<<") pull in entries from a mapping or a sequence of
// mappings; explicit keys win over merged ones, and earlier merge sources win
// over later ones.
func mappingValue(n *yaml.Node) (map[string]any, error) {
	out := make(map[string]any, len(n.Content)/2)
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := resolve(n.Content[i])
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
		}
		switch key.ShortTag() {
		case "!!merge":
			merges = append(merges, n.Content[i+1])
			continue
		case "!!str":
		default:
			return nil, fmt.Errorf("line %d: mapping key %q must be a string", key.Line, key.Value)
		}
		if _, dup := out[key.Value]; dup {
			return nil, fmt.Errorf("line %d: mapping key %q already defined", key.Line, key.Value)
		}
		val, err := nodeValue(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		out[key.Value] = val
	}

	for _, m := range merges {
		src := resolve(m)
		var sources []*yaml.Node
		switch src.Kind {
		case yaml.MappingNode:
			sources = []*yaml.Node{src}
		case yaml.SequenceNode:
			for _, c := range src.Content {
				c = resolve(c)
				if c.Kind != yaml.MappingNode {
					return nil, fmt.Errorf("line %d: merge sequence must contain mappings", c.Line)
				}
				sources = append(sources, c)
			}
		default:
			return nil, fmt.Errorf("line %d: merge value must be a mapping", src.Line)
		}
		for _, s := range sources {
			merged, err := mappingValue(s)
			if err != nil {
				return nil, err
			}
			for k, v := range merged {
				if _, ok := out[k]; !ok {
					out[k] = v
				}
			}
		}
	}
	return out, nil
}
