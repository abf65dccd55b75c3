package utils

import "testing"

func TestClassifyInteger(t *testing.T) {
	accepted := []interface{}{3, float64(3), "42", "-7"}
	for _, v := range accepted {
		if !Classify(v, Integer) {
			t.Errorf("Classify(%#v, Integer) = false, want true", v)
		}
	}
	rejected := []interface{}{float64(3.5), "3.5", "12x", "", true, nil}
	for _, v := range rejected {
		if Classify(v, Integer) {
			t.Errorf("Classify(%#v, Integer) = true, want false", v)
		}
	}
}

func TestClassifyFloat(t *testing.T) {
	accepted := []interface{}{float64(3.5), float64(3), 3, "3.5", "42"}
	for _, v := range accepted {
		if !Classify(v, Float) {
			t.Errorf("Classify(%#v, Float) = false, want true", v)
		}
	}
	rejected := []interface{}{"abc", "", true, nil}
	for _, v := range rejected {
		if Classify(v, Float) {
			t.Errorf("Classify(%#v, Float) = true, want false", v)
		}
	}
}

// Boolean accepts real booleans and only the literal wire tokens.
func TestClassifyBoolean(t *testing.T) {
	for _, v := range []interface{}{true, false, "true", "false"} {
		if !Classify(v, Boolean) {
			t.Errorf("Classify(%#v, Boolean) = false, want true", v)
		}
	}
	for _, v := range []interface{}{"True", "FALSE", "yes", "1", 1, nil} {
		if Classify(v, Boolean) {
			t.Errorf("Classify(%#v, Boolean) = true, want false", v)
		}
	}
}

func TestClassifyEmail(t *testing.T) {
	for _, v := range []interface{}{"jane@example.com", "j.doe+tag@mail.example.org"} {
		if !Classify(v, Email) {
			t.Errorf("Classify(%#v, Email) = false, want true", v)
		}
	}
	for _, v := range []interface{}{"jane@example", "not-an-email", "@example.com", 42, nil} {
		if Classify(v, Email) {
			t.Errorf("Classify(%#v, Email) = true, want false", v)
		}
	}
}

// Numeric-looking text is deliberately not a string: "123" classifies as an
// integer and must fail the string check.
func TestClassifyStringRejectsNumericText(t *testing.T) {
	for _, v := range []interface{}{"Oregon", "hello world", "12b"} {
		if !Classify(v, String) {
			t.Errorf("Classify(%#v, String) = false, want true", v)
		}
	}
	for _, v := range []interface{}{"123", "3.5", "-1", 123, true, nil} {
		if Classify(v, String) {
			t.Errorf("Classify(%#v, String) = true, want false", v)
		}
	}
}
