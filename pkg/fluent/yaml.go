package fluent

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.fluent/pkg/assertion"
)

// YAMLAsserter adds type assertions to a YAML node. Document nodes
// and aliases are resolved to the node they point at.
type YAMLAsserter struct {
	*Asserter[*yaml.Node]
}

// ThatYAML starts an assertion chain for a parsed YAML node.
func ThatYAML(t assertion.TestingT, node *yaml.Node) *YAMLAsserter {
	return &YAMLAsserter{newAsserter(t, resolveNode(node))}
}

// ThatYAMLBytes parses data and starts an assertion chain for the
// first document. An empty input is a null document.
func ThatYAMLBytes(t assertion.TestingT, data []byte) *YAMLAsserter {
	y := &YAMLAsserter{newAsserter[*yaml.Node](t, nil)}
	y.t.Helper()

	var doc yaml.Node
	err := yaml.Unmarshal(data, &doc)
	y.check(err == nil,
		assertion.NoExpected("to be valid YAML", assertion.Verbatim(data)).With("cause", err),
	)
	y.value = resolveNode(&doc)
	return y
}

func resolveNode(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func (y *YAMLAsserter) And() *YAMLAsserter {
	return y
}

func (y *YAMLAsserter) scalar(tag string) bool {
	return y.value != nil && y.value.Kind == yaml.ScalarNode && y.value.ShortTag() == tag
}

// IsNull asserts that the node is null or empty.
func (y *YAMLAsserter) IsNull() {
	y.t.Helper()
	n := y.value
	null := n == nil || n.Kind == 0 || n.Kind == yaml.DocumentNode || y.scalar("!!null")
	y.check(null, assertion.NoExpected("to be null", yamlText(n)))
}

// IsBoolean asserts that the node is a boolean scalar and narrows
// the chain to its value.
func (y *YAMLAsserter) IsBoolean() *BoolAsserter[bool] {
	y.t.Helper()
	var b bool
	ok := y.scalar("!!bool") && y.value.Decode(&b) == nil
	y.check(ok, assertion.NoExpected("to be a boolean", yamlText(y.value)))
	return &BoolAsserter[bool]{derive(y.Asserter, b)}
}

// IsNumber asserts that the node is an integer or float scalar and
// narrows the chain to its value.
func (y *YAMLAsserter) IsNumber() *Asserter[float64] {
	y.t.Helper()
	var f float64
	ok := (y.scalar("!!int") || y.scalar("!!float")) && y.value.Decode(&f) == nil
	y.check(ok, assertion.NoExpected("to be a number", yamlText(y.value)))
	return derive(y.Asserter, f)
}

// IsString asserts that the node is a string scalar and narrows
// the chain to its value.
func (y *YAMLAsserter) IsString() *StringAsserter[string] {
	y.t.Helper()
	ok := y.scalar("!!str")
	y.check(ok, assertion.NoExpected("to be a string", yamlText(y.value)))
	return &StringAsserter[string]{derive(y.Asserter, y.value.Value)}
}

// IsSequence asserts that the node is a sequence.
func (y *YAMLAsserter) IsSequence() *YAMLSequenceAsserter {
	y.t.Helper()
	ok := y.value != nil && y.value.Kind == yaml.SequenceNode
	y.check(ok, assertion.NoExpected("to be a sequence", yamlText(y.value)))
	return &YAMLSequenceAsserter{y.Asserter}
}

// IsMapping asserts that the node is a mapping.
func (y *YAMLAsserter) IsMapping() *YAMLMappingAsserter {
	y.t.Helper()
	ok := y.value != nil && y.value.Kind == yaml.MappingNode
	y.check(ok, assertion.NoExpected("to be a mapping", yamlText(y.value)))
	return &YAMLMappingAsserter{y.Asserter}
}

// YAMLSequenceAsserter holds a node confirmed to be a sequence.
type YAMLSequenceAsserter struct {
	*Asserter[*yaml.Node]
}

func (s *YAMLSequenceAsserter) And() *YAMLSequenceAsserter {
	return s
}

// Size continues the chain with the number of items.
func (s *YAMLSequenceAsserter) Size() *Asserter[int] {
	return derive(s.Asserter, len(s.value.Content))
}

// Index asserts that the sequence has an item at i and continues
// the chain with it.
func (s *YAMLSequenceAsserter) Index(i int) *YAMLAsserter {
	s.t.Helper()
	items := s.value.Content
	s.check(i >= 0 && i < len(items),
		assertion.NoExpected(fmt.Sprintf("to have an item at index %d", i), yamlText(s.value)).
			With("length", len(items)),
	)
	return &YAMLAsserter{derive(s.Asserter, resolveNode(items[i]))}
}

// Nodes continues the chain with the item nodes.
func (s *YAMLSequenceAsserter) Nodes() *SliceAsserter[*yaml.Node] {
	return &SliceAsserter[*yaml.Node]{derive(s.Asserter, s.value.Content)}
}

// YAMLMappingAsserter holds a node confirmed to be a mapping.
type YAMLMappingAsserter struct {
	*Asserter[*yaml.Node]
}

func (m *YAMLMappingAsserter) And() *YAMLMappingAsserter {
	return m
}

// Get asserts that the mapping has a scalar key equal to key and
// continues the chain with its value.
func (m *YAMLMappingAsserter) Get(key string) *YAMLAsserter {
	m.t.Helper()
	var value *yaml.Node
	content := m.value.Content
	for i := 0; i+1 < len(content); i += 2 {
		if k := content[i]; k.Kind == yaml.ScalarNode && k.Value == key {
			value = content[i+1]
			break
		}
	}
	m.check(value != nil, assertion.WithExpected("to have the key", yamlText(m.value), key))
	return &YAMLAsserter{derive(m.Asserter, resolveNode(value))}
}

// Keys continues the chain with the scalar keys in document order.
func (m *YAMLMappingAsserter) Keys() *SliceAsserter[string] {
	var keys []string
	content := m.value.Content
	for i := 0; i+1 < len(content); i += 2 {
		if k := content[i]; k.Kind == yaml.ScalarNode {
			keys = append(keys, k.Value)
		}
	}
	return &SliceAsserter[string]{derive(m.Asserter, keys)}
}

// yamlText renders n as YAML source.
func yamlText(n *yaml.Node) any {
	if n == nil || n.Kind == 0 {
		return assertion.Verbatim("null")
	}
	data, err := yaml.Marshal(n)
	if err != nil {
		return n.Value
	}
	return assertion.Verbatim(strings.TrimSuffix(string(data), "\n"))
}
