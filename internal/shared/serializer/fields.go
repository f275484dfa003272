package serializer

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Fields is the raw, untyped key/value body of a request.
type Fields map[string]any

// numbers stay json.Number so integers and decimals keep their exact text
var jsonAPI = jsoniter.Config{
	UseNumber:              true,
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
}.Froze()

// DecodeJSON reads a JSON object body. An empty body is an empty object.
func DecodeJSON(r io.Reader) (Fields, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Format: "JSON", Err: err}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return Fields{}, nil
	}

	var raw any
	if err := jsonAPI.Unmarshal(body, &raw); err != nil {
		return nil, &ParseError{Format: "JSON", Err: err}
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, FieldErrors{
			NonFieldErrors: {fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", typeName(raw))},
		}
	}
	return Fields(obj), nil
}

// FromValues converts form values; for repeated keys the last value wins.
func FromValues(values url.Values) Fields {
	f := make(Fields, len(values))
	for k, vs := range values {
		if len(vs) == 0 {
			continue
		}
		f[k] = vs[len(vs)-1]
	}
	return f
}

// typeName names a decoded JSON value the way clients see it in error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "NoneType"
	case bool:
		return "bool"
	case string:
		return "str"
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	default:
		if text, ok := numberText(v); ok {
			if strings.ContainsAny(text, ".eE") {
				return "float"
			}
			return "int"
		}
		return fmt.Sprintf("%T", v)
	}
}
