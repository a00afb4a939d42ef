package tabx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Decode reads a tree in the given format.
func Decode(r io.Reader, f InputFormat) (Value, error) {
	switch f {
	case JSON, "":
		return DecodeJSON(r)
	case YAML:
		return DecodeYAML(r)
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrUnsupportedInputFormat, f)
	}
}

// DecodeJSON reads a JSON tree, keeping object keys in document order.
// A stream of several top-level values decodes as an array of them, which
// makes JSON lines input behave like a JSON array.
func DecodeJSON(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var docs []Value
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Value{}, fmt.Errorf("%w: json: %w", ErrMalformedTree, err)
		}
		v, err := decodeJSON(dec, tok)
		if err != nil {
			return Value{}, fmt.Errorf("%w: json: %w", ErrMalformedTree, err)
		}
		docs = append(docs, v)
	}
	return collectDocuments("json", docs)
}

func decodeJSON(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			var items []Value
			for dec.More() {
				next, err := nextJSONToken(dec)
				if err != nil {
					return Value{}, err
				}
				item, err := decodeJSON(dec, next)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := nextJSONToken(dec); err != nil {
				return Value{}, err
			}
			return Array(items...), nil
		case '{':
			var members []Member
			for dec.More() {
				keyTok, err := nextJSONToken(dec)
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("object key %v is not a string", keyTok)
				}
				valTok, err := nextJSONToken(dec)
				if err != nil {
					return Value{}, err
				}
				val, err := decodeJSON(dec, valTok)
				if err != nil {
					return Value{}, err
				}
				members = append(members, Member{Key: key, Value: val})
			}
			if _, err := nextJSONToken(dec); err != nil {
				return Value{}, err
			}
			return Object(members...), nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %T", tok)
	}
}

// nextJSONToken reads a token inside a container, where running out of
// input is always an error.
func nextJSONToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

// DecodeYAML reads a YAML tree, keeping mapping keys in document order.
// Several documents decode as an array of them. Aliases are expanded;
// scalars tagged !!null, !!bool, !!int and !!float become Null, Bool and
// Number, and every other scalar is a String.
func DecodeYAML(r io.Reader) (Value, error) {
	dec := yaml.NewDecoder(r)
	var docs []Value
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Value{}, fmt.Errorf("%w: yaml: %w", ErrMalformedTree, err)
		}
		v, err := fromYAML(&node, map[*yaml.Node]bool{})
		if err != nil {
			return Value{}, fmt.Errorf("%w: yaml: %w", ErrMalformedTree, err)
		}
		docs = append(docs, v)
	}
	return collectDocuments("yaml", docs)
}

func fromYAML(n *yaml.Node, expanding map[*yaml.Node]bool) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromYAML(n.Content[0], expanding)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := fromYAML(c, expanding)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Array(items...), nil
	case yaml.MappingNode:
		members := make([]Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind == yaml.AliasNode && k.Alias != nil {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
			}
			val, err := fromYAML(n.Content[i+1], expanding)
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: k.Value, Value: val})
		}
		return Object(members...), nil
	case yaml.AliasNode:
		if n.Alias == nil || expanding[n.Alias] {
			return Value{}, fmt.Errorf("line %d: alias %q cannot be expanded", n.Line, n.Value)
		}
		expanding[n.Alias] = true
		defer delete(expanding, n.Alias)
		return fromYAML(n.Alias, expanding)
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return Null(), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return Value{}, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return Bool(b), nil
		case "!!int", "!!float":
			return Number(n.Value), nil
		default:
			return String(n.Value), nil
		}
	default:
		return Value{}, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func collectDocuments(format string, docs []Value) (Value, error) {
	switch len(docs) {
	case 0:
		return Value{}, fmt.Errorf("%w: %s: empty document", ErrMalformedTree, format)
	case 1:
		return docs[0], nil
	default:
		return Array(docs...), nil
	}
}
