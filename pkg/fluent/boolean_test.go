package fluent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.fluent/pkg/assertion"
)

type flag bool

func TestBoolAsserter(t *testing.T) {
	ThatBool(t, true).IsTrue().And().Is(true)
	ThatBool(t, flag(false)).IsFalse()
	AsBool(That(t, 1 > 0)).IsTrue()
}

func TestBoolAsserter_Failures(t *testing.T) {
	tests := []struct {
		name  string
		chain func(t assertion.TestingT)
		label string
	}{
		{
			name:  "false is not true",
			chain: func(t assertion.TestingT) { ThatBool(t, false).IsTrue() },
			label: "expected value to be true",
		},
		{
			name:  "true is not false",
			chain: func(t assertion.TestingT) { ThatBool(t, flag(true)).IsFalse() },
			label: "expected value to be false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := requireFail(t, tt.chain)
			assert.Contains(t, msg, tt.label)
		})
	}
}
