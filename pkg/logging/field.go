package logging

// Keys of the fields attached to assertion outcomes.
const (
	KeyLabel  = "label"
	KeyTest   = "test"
	KeyPassed = "passed"
	KeyError  = "error"
)

// LabelField names the expectation an assertion checked, such as
// "to equal" or "to be Some".
func LabelField(label string) Field {
	return Field{Key: KeyLabel, Value: label}
}

// TestField names the test that ran the assertion.
func TestField(name string) Field {
	return Field{Key: KeyTest, Value: name}
}

// PassedField records whether the assertion held.
func PassedField(passed bool) Field {
	return Field{Key: KeyPassed, Value: passed}
}

// LogField creates a Field from a key-value pair.
func LogField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

func StringField(key, value string) Field {
	return Field{Key: key, Value: value}
}

func IntField(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func BoolField(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// ErrorField records err under "error". A nil err is recorded as
// "<nil>".
func ErrorField(err error) Field {
	if err == nil {
		return Field{Key: KeyError, Value: "<nil>"}
	}
	return Field{Key: KeyError, Value: err.Error()}
}
