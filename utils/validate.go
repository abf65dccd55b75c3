package utils

import (
	"math"
	"regexp"
	"strconv"
)

// Kind names a semantic type a request field can be checked against.
type Kind string

const (
	Integer Kind = "integer"
	Float   Kind = "float"
	Boolean Kind = "boolean"
	Email   Kind = "email"
	String  Kind = "string"
)

// Conservative local-part "@" domain-with-dot shape. Used only where an
// email address is accepted from a client.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9][\w.+-]*@[A-Za-z0-9][\w-]*(\.[\w-]+)+$`)

// Classify reports whether value can be read as the given kind. Values may
// arrive as strings (form transport) or as already-typed JSON values; the
// same predicate accepts both. It never returns an error: anything that does
// not match is simply false.
//
// Two inherited policies worth knowing about:
//   - Boolean accepts real booleans and the literal tokens "true"/"false"
//     only, a carryover of the form-encoded wire contract.
//   - String rejects numeric-looking text: a value of "123" is an integer,
//     not a string.
func Classify(value interface{}, kind Kind) bool {
	switch kind {
	case Integer:
		switch v := value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		case float64:
			// JSON numbers decode as float64; accept only whole values.
			return v == math.Trunc(v)
		case float32:
			return float64(v) == math.Trunc(float64(v))
		case string:
			_, err := strconv.ParseInt(v, 10, 64)
			return err == nil
		}
		return false
	case Float:
		switch v := value.(type) {
		case float32, float64:
			return true
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		case string:
			_, err := strconv.ParseFloat(v, 64)
			return err == nil
		}
		return false
	case Boolean:
		switch v := value.(type) {
		case bool:
			return true
		case string:
			return v == "true" || v == "false"
		}
		return false
	case Email:
		s, ok := value.(string)
		return ok && emailPattern.MatchString(s)
	case String:
		s, ok := value.(string)
		if !ok {
			return false
		}
		return !Classify(s, Integer) && !Classify(s, Float)
	}
	return false
}
