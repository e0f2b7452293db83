package argv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	yamlv3 "go.yaml.in/yaml/v3"
)

// DecodeJSON 解析 JSON 文档，保留对象 key 的书写顺序。
//
// 同一对象内重复的 key 保留首次出现的位置，取最后一次的值。
// 文档之后出现多余内容视为错误。
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("%w: trailing data after document", ErrDecode)
	}

	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
		}
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return Value{}, fmt.Errorf("number %s: %w", t, err)
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (Value, error) {
	var members []Member
	index := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be string, got %v", tok)
		}

		v, err := decodeJSONValue(dec)
		if err != nil {
			return Value{}, err
		}

		if i, seen := index[key]; seen {
			members[i].Value = v

			continue
		}
		index[key] = len(members)
		members = append(members, Field(key, v))
	}

	// 读取结尾的 '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}

	return Object(members...), nil
}

func decodeJSONArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for dec.More() {
		v, err := decodeJSONValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}

	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}

	return Array(items...), nil
}

// DecodeYAML 解析 YAML 文档，得到与 JSON 相同的节点树。
//
// 标量按 tag 解析：!!null、!!bool、!!int/!!float 转为数字，其余一律视为字符串。
// 空文档返回 null。
func DecodeYAML(data []byte) (Value, error) {
	var doc yamlv3.Node
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Null(), nil
	}

	v, err := decodeYAMLNode(doc.Content[0])
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return v, nil
}

func decodeYAMLNode(n *yamlv3.Node) (Value, error) {
	switch n.Kind {
	case yamlv3.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return decodeYAMLNode(n.Content[0])
	case yamlv3.AliasNode:
		return decodeYAMLNode(n.Alias)
	case yamlv3.MappingNode:
		return decodeYAMLMapping(n)
	case yamlv3.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := decodeYAMLNode(child)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Array(items...), nil
	case yamlv3.ScalarNode:
		return decodeYAMLScalar(n)
	default:
		return Value{}, fmt.Errorf("line %d: unsupported yaml node kind %d", n.Line, n.Kind)
	}
}

func decodeYAMLMapping(n *yamlv3.Node) (Value, error) {
	var members []Member
	index := make(map[string]int)

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		if keyNode.Kind != yamlv3.ScalarNode {
			return Value{}, fmt.Errorf("line %d: mapping key must be scalar", keyNode.Line)
		}

		v, err := decodeYAMLNode(valNode)
		if err != nil {
			return Value{}, err
		}

		key := keyNode.Value
		if j, seen := index[key]; seen {
			members[j].Value = v

			continue
		}
		index[key] = len(members)
		members = append(members, Field(key, v))
	}

	return Object(members...), nil
}

func decodeYAMLScalar(n *yamlv3.Node) (Value, error) {
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
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Number(f), nil
	default:
		return String(n.Value), nil
	}
}
