package serializer

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	t.Run("object keeps exact numbers", func(t *testing.T) {
		fields, err := DecodeJSON(strings.NewReader(`{"page": 3, "price": 12.50, "name": "Ada"}`))
		require.NoError(t, err)

		rd := NewReader(fields)
		assert.Equal(t, int64(3), rd.Integer("page"))
		assert.Equal(t, "12.50", rd.Decimal("price").StringFixed(2))
		assert.Equal(t, "Ada", rd.String("name"))
		assert.Empty(t, rd.Errors())
	})

	t.Run("empty body", func(t *testing.T) {
		fields, err := DecodeJSON(strings.NewReader("  "))
		require.NoError(t, err)
		assert.Empty(t, fields)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := DecodeJSON(strings.NewReader(`{"name": `))

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.True(t, strings.HasPrefix(pe.Error(), "JSON parse error - "))
	})

	t.Run("not an object", func(t *testing.T) {
		tests := map[string]string{
			`[1, 2]`: "list",
			`"text"`: "str",
			`5`:      "int",
			`null`:   "NoneType",
		}
		for body, typ := range tests {
			_, err := DecodeJSON(strings.NewReader(body))

			fe, ok := AsFieldErrors(err)
			require.True(t, ok, body)
			assert.Equal(t, []string{"Invalid data. Expected a dictionary, but got " + typ + "."}, fe[NonFieldErrors])
		}
	})
}

func TestFromValues_LastWins(t *testing.T) {
	fields := FromValues(url.Values{"name": {"first", "second"}, "bio": {"x"}})
	assert.Equal(t, Fields{"name": "second", "bio": "x"}, fields)
}

func TestBind(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bind := func(contentType, body string) (Fields, error) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if contentType != "" {
			c.Request.Header.Set("Content-Type", contentType)
		}
		return Bind(c)
	}

	t.Run("json", func(t *testing.T) {
		fields, err := bind("application/json", `{"name": "Ada"}`)
		require.NoError(t, err)
		assert.Equal(t, "Ada", fields["name"])
	})

	t.Run("form", func(t *testing.T) {
		fields, err := bind("application/x-www-form-urlencoded", "name=Ada&bio=math&bio=poetry")
		require.NoError(t, err)
		assert.Equal(t, Fields{"name": "Ada", "bio": "poetry"}, fields)
	})

	t.Run("no content type is read as json", func(t *testing.T) {
		fields, err := bind("", `{"page": 1}`)
		require.NoError(t, err)
		assert.Contains(t, fields, "page")
	})
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, "NoneType"},
		{true, "bool"},
		{"x", "str"},
		{[]any{}, "list"},
		{map[string]any{}, "dict"},
		{json.Number("3"), "int"},
		{json.Number("3.5"), "float"},
		{json.Number("1e3"), "float"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, typeName(tt.value), "%#v", tt.value)
	}
}
