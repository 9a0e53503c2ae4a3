package fluent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"digital.vasic.fluent/pkg/assertion"
)

const serviceYAML = `
name: billing
replicas: 3
ratio: 0.25
enabled: true
owner: ~
ports: [8080, 9090]
defaults: &defaults
  tier: backend
labels: *defaults
`

func TestYAMLAsserter(t *testing.T) {
	m := ThatYAMLBytes(t, []byte(serviceYAML)).IsMapping()

	m.Get("name").IsString().Equals("billing")
	m.Get("replicas").IsNumber().Equals(3)
	m.Get("ratio").IsNumber().Equals(0.25)
	m.Get("enabled").IsBoolean().IsTrue()
	m.Get("owner").IsNull()
	m.Get("labels").IsMapping().Get("tier").IsString().Equals("backend")

	ports := m.Get("ports").IsSequence()
	ports.Size().Equals(2)
	ports.Index(1).IsNumber().Equals(9090)
	ports.Nodes().AllMatch(func(n *yaml.Node) bool { return n.ShortTag() == "!!int" })

	m.Keys().Equals([]string{"name", "replicas", "ratio", "enabled", "owner", "ports", "defaults", "labels"})
}

func TestThatYAML_Node(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("- a\n- b\n"), &doc))

	ThatYAML(t, &doc).IsSequence().Index(0).IsString().Equals("a")
	ThatYAML(t, nil).IsNull()
	ThatYAMLBytes(t, nil).IsNull()
}

func TestYAMLAsserter_Failures(t *testing.T) {
	tests := []struct {
		name  string
		chain func(t assertion.TestingT)
		want  []string
	}{
		{
			name:  "invalid document",
			chain: func(t assertion.TestingT) { ThatYAMLBytes(t, []byte("a: [1")) },
			want:  []string{"expected value to be valid YAML", "cause:"},
		},
		{
			name:  "quoted number is a string",
			chain: func(t assertion.TestingT) { ThatYAMLBytes(t, []byte(`"42"`)).IsNumber() },
			want:  []string{"expected value to be a number", `actual: "42"`},
		},
		{
			name:  "number is not a boolean",
			chain: func(t assertion.TestingT) { ThatYAMLBytes(t, []byte("1")).IsBoolean() },
			want:  []string{"expected value to be a boolean", "actual: 1"},
		},
		{
			name:  "number is not a string",
			chain: func(t assertion.TestingT) { ThatYAMLBytes(t, []byte("1")).IsString() },
			want:  []string{"expected value to be a string"},
		},
		{
			name:  "scalar is not null",
			chain: func(t assertion.TestingT) { ThatYAMLBytes(t, []byte("x")).IsNull() },
			want:  []string{"expected value to be null", "actual: x"},
		},
		{
			name:  "mapping is not a sequence",
			chain: func(t assertion.TestingT) { ThatYAMLBytes(t, []byte("a: 1")).IsSequence() },
			want:  []string{"expected value to be a sequence", "actual: a: 1"},
		},
		{
			name:  "sequence is not a mapping",
			chain: func(t assertion.TestingT) { ThatYAMLBytes(t, []byte("[1]")).IsMapping() },
			want:  []string{"expected value to be a mapping"},
		},
		{
			name: "missing key",
			chain: func(t assertion.TestingT) {
				ThatYAMLBytes(t, []byte("a: 1")).IsMapping().Get("b")
			},
			want: []string{"expected value to have the key", `expected: "b"`},
		},
		{
			name: "index out of range",
			chain: func(t assertion.TestingT) {
				ThatYAMLBytes(t, []byte("[1]")).IsSequence().Index(1)
			},
			want: []string{"expected value to have an item at index 1", "length: 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := requireFail(t, tt.chain)
			for _, w := range tt.want {
				assert.Contains(t, msg, w)
			}
		})
	}
}
