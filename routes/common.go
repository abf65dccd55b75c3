package routes

import (
	"strconv"
	"strings"

	"hbnb-clone-server/utils"

	"github.com/kataras/iris/v12"
)

// readBody decodes a request body into a key/value map so handlers can tell
// absent fields from zero values. JSON and form transports are both
// accepted; form values arrive as strings and go through the same classifier
// as typed JSON values.
func readBody(ctx iris.Context) (map[string]interface{}, bool) {
	contentType := ctx.GetContentTypeRequested()
	if strings.Contains(contentType, "form") {
		data := map[string]interface{}{}
		for key, values := range ctx.FormValues() {
			if len(values) > 0 {
				data[key] = values[len(values)-1]
			}
		}
		return data, true
	}

	var data map[string]interface{}
	if err := ctx.ReadJSON(&data); err != nil {
		utils.BadRequest(ctx, "request body is not valid JSON")
		return nil, false
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	return data, true
}

// asInt converts a value that already passed Classify(v, utils.Integer).
func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		parsed, _ := strconv.ParseInt(n, 10, 64)
		return int(parsed)
	}
	return 0
}

// asFloat converts a value that already passed Classify(v, utils.Float).
func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		parsed, _ := strconv.ParseFloat(n, 64)
		return parsed
	}
	return 0
}

// asBool converts a value that already passed Classify(v, utils.Boolean).
func asBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	}
	return false
}

func parseID(raw string) (uint, bool) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
