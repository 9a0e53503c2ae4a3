package fluent

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"maps"
	"slices"

	"digital.vasic.fluent/pkg/assertion"
)

// JSONAsserter adds type assertions to a decoded JSON value: nil,
// bool, float64 or json.Number, string, []any or map[string]any.
type JSONAsserter struct {
	*Asserter[any]
}

// ThatJSON starts an assertion chain for a decoded JSON value.
func ThatJSON(t assertion.TestingT, value any) *JSONAsserter {
	return &JSONAsserter{newAsserter(t, value)}
}

// ThatJSONBytes decodes data and starts an assertion chain for the
// result. Numbers decode as json.Number so no precision is lost.
func ThatJSONBytes(t assertion.TestingT, data []byte) *JSONAsserter {
	j := &JSONAsserter{newAsserter[any](t, nil)}
	j.t.Helper()

	value, err := decodeJSON(data)
	j.check(err == nil,
		assertion.NoExpected("to be valid JSON", assertion.Verbatim(data)).With("cause", err),
	)
	j.value = value
	return j
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return value, nil
}

func (j *JSONAsserter) And() *JSONAsserter {
	return j
}

// IsNull asserts that the value is null.
func (j *JSONAsserter) IsNull() {
	j.t.Helper()
	j.check(j.value == nil, assertion.NoExpected("to be null", jsonText(j.value)))
}

// IsBoolean asserts that the value is a boolean and narrows the
// chain to it.
func (j *JSONAsserter) IsBoolean() *BoolAsserter[bool] {
	j.t.Helper()
	b, ok := j.value.(bool)
	j.check(ok, assertion.NoExpected("to be a boolean", jsonText(j.value)))
	return &BoolAsserter[bool]{derive(j.Asserter, b)}
}

// IsNumber asserts that the value is a number and narrows the
// chain to it. A JSON number that float64 cannot hold fails with
// the conversion error as its cause.
func (j *JSONAsserter) IsNumber() *Asserter[float64] {
	j.t.Helper()
	n, isNumber, err := jsonNumber(j.value)
	j.check(isNumber, assertion.NoExpected("to be a number", jsonText(j.value)))
	j.check(err == nil,
		assertion.NoExpected("conversion of the number to float64 to succeed", jsonText(j.value)).With("cause", err),
	)
	return derive(j.Asserter, n)
}

// jsonNumber reports whether v is a number and, if so, its float64
// value or the error converting it.
func jsonNumber(v any) (float64, bool, error) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, true, err
	}
	f, err := assertion.Convert[float64](v)
	if errors.Is(err, assertion.ErrIncompatible) {
		return 0, false, nil
	}
	return f, true, err
}

// IsString asserts that the value is a string and narrows the
// chain to it.
func (j *JSONAsserter) IsString() *StringAsserter[string] {
	j.t.Helper()
	s, ok := j.value.(string)
	j.check(ok, assertion.NoExpected("to be a string", jsonText(j.value)))
	return &StringAsserter[string]{derive(j.Asserter, s)}
}

// IsArray asserts that the value is an array and narrows the chain
// to its items.
func (j *JSONAsserter) IsArray() *SliceAsserter[any] {
	j.t.Helper()
	items, ok := j.value.([]any)
	j.check(ok, assertion.NoExpected("to be an array", jsonText(j.value)))
	return &SliceAsserter[any]{derive(j.Asserter, items)}
}

// IsObject asserts that the value is an object and narrows the
// chain to it.
func (j *JSONAsserter) IsObject() *JSONObjectAsserter {
	j.t.Helper()
	obj, ok := j.value.(map[string]any)
	j.check(ok, assertion.NoExpected("to be an object", jsonText(j.value)))
	return &JSONObjectAsserter{derive(j.Asserter, obj)}
}

// JSONObjectAsserter holds a JSON value confirmed to be an object.
type JSONObjectAsserter struct {
	*Asserter[map[string]any]
}

func (o *JSONObjectAsserter) And() *JSONObjectAsserter {
	return o
}

// Get asserts that the object has key and continues the chain with
// its value. The object itself is not modified.
func (o *JSONObjectAsserter) Get(key string) *JSONAsserter {
	o.t.Helper()
	v, ok := o.value[key]
	o.check(ok, assertion.WithExpected("to have the key", jsonText(o.value), key))
	return &JSONAsserter{derive(o.Asserter, v)}
}

// Keys continues the chain with the object's keys in sorted order.
func (o *JSONObjectAsserter) Keys() *SliceAsserter[string] {
	return &SliceAsserter[string]{derive(o.Asserter, slices.Sorted(maps.Keys(o.value)))}
}

// jsonText renders v as compact JSON when it can be encoded.
func jsonText(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	return assertion.Verbatim(data)
}
