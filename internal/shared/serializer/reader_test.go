package serializer

import (
	"encoding/json"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_String(t *testing.T) {
	rd := NewReader(Fields{
		"trimmed": "  Ada  ",
		"number":  json.Number("42"),
		"flag":    true,
		"null":    nil,
	})

	assert.Equal(t, "Ada", rd.String("trimmed"))
	assert.Equal(t, "42", rd.String("number"))
	assert.Equal(t, "", rd.String("flag"))
	assert.Equal(t, "", rd.String("null"))
	assert.Equal(t, "", rd.String("missing"))

	errs := rd.Errors()
	assert.False(t, errs.Has("trimmed"))
	assert.False(t, errs.Has("number"))
	assert.Equal(t, []string{MsgInvalidString}, errs["flag"])
	assert.Equal(t, []string{MsgNull}, errs["null"])
	assert.Equal(t, []string{MsgRequired}, errs["missing"])
}

func TestReader_Integer(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int64
		ok    bool
	}{
		{"json number", json.Number("7"), 7, true},
		{"numeric string", "7", 7, true},
		{"integral float text", "7.0", 7, true},
		{"integral json float", json.Number("7.00"), 7, true},
		{"fraction", "7.5", 0, false},
		{"word", "seven", 0, false},
		{"bool", false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rd := NewReader(Fields{"n": tt.value})
			assert.Equal(t, tt.want, rd.Integer("n"))
			if tt.ok {
				assert.Empty(t, rd.Errors())
			} else {
				assert.Equal(t, []string{MsgInvalidInteger}, rd.Errors()["n"])
			}
		})
	}
}

func TestReader_PrimaryKey(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int64
		msg   string
	}{
		{"json number", json.Number("3"), 3, ""},
		{"numeric string", "3", 3, ""},
		{"bool", true, 0, MsgPKIncorrectType("bool")},
		{"word", "three", 0, MsgPKIncorrectType("str")},
		{"fraction", json.Number("3.5"), 0, MsgPKIncorrectType("float")},
		{"list", []any{json.Number("3")}, 0, MsgPKIncorrectType("list")},
		{"empty form value", "", 0, MsgNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rd := NewReader(Fields{"author": tt.value})
			assert.Equal(t, tt.want, rd.PrimaryKey("author"))
			if tt.msg == "" {
				assert.Empty(t, rd.Errors())
			} else {
				assert.Equal(t, []string{tt.msg}, rd.Errors()["author"])
			}
		})
	}
}

func TestReader_Date(t *testing.T) {
	rd := NewReader(Fields{
		"ok":     "2021-03-04",
		"short":  "2021-3-4",
		"format": "04/03/2021",
		"number": json.Number("20210304"),
		"day":    "2021-02-30",
	})

	assert.Equal(t, time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), rd.Date("ok"))
	assert.Equal(t, time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), rd.Date("short"))
	assert.True(t, rd.Date("day").IsZero())
	assert.True(t, rd.Date("format").IsZero())
	assert.True(t, rd.Date("number").IsZero())

	assert.False(t, rd.Errors().Has("ok"))
	assert.False(t, rd.Errors().Has("short"))
	assert.Equal(t, []string{MsgInvalidDate}, rd.Errors()["day"])
	assert.Equal(t, []string{MsgInvalidDate}, rd.Errors()["format"])
	assert.Equal(t, []string{MsgInvalidDate}, rd.Errors()["number"])
}

func TestReader_Decimal(t *testing.T) {
	rd := NewReader(Fields{
		"string": "12.50",
		"number": json.Number("9.99"),
		"word":   "cheap",
		"bool":   true,
	})

	assert.True(t, decimal.RequireFromString("12.50").Equal(rd.Decimal("string")))
	assert.True(t, decimal.RequireFromString("9.99").Equal(rd.Decimal("number")))
	assert.True(t, rd.Decimal("word").IsZero())
	assert.True(t, rd.Decimal("bool").IsZero())

	assert.Equal(t, []string{MsgInvalidNumber}, rd.Errors()["word"])
	assert.Equal(t, []string{MsgInvalidNumber}, rd.Errors()["bool"])
}

type nameRule struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

func (r nameRule) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error(MsgBlank)),
		validation.Field(&r.Bio, validation.Required.Error(MsgBlank)),
	)
}

func TestReader_Validate(t *testing.T) {
	t.Run("read errors win over rule errors", func(t *testing.T) {
		rd := NewReader(Fields{"bio": "  "})
		req := nameRule{Name: rd.String("name"), Bio: rd.String("bio")}

		err := rd.Validate(req)

		fe, ok := AsFieldErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{MsgRequired}, fe["name"])
		assert.Equal(t, []string{MsgBlank}, fe["bio"])
	})

	t.Run("external errors are kept", func(t *testing.T) {
		rd := NewReader(Fields{"name": "x", "bio": "y"})
		req := nameRule{Name: rd.String("name"), Bio: rd.String("bio")}
		rd.AddError("author", MsgPKDoesNotExist(9))

		fe, ok := AsFieldErrors(rd.Validate(req))
		require.True(t, ok)
		assert.Equal(t, FieldErrors{"author": {`Invalid pk "9" - object does not exist.`}}, fe)
	})

	t.Run("valid", func(t *testing.T) {
		rd := NewReader(Fields{"name": "x", "bio": "y"})
		req := nameRule{Name: rd.String("name"), Bio: rd.String("bio")}
		assert.NoError(t, rd.Validate(req))
	})
}

func TestFieldErrors_Error(t *testing.T) {
	fe := FieldErrors{"b": {"two"}, "a": {"one"}}
	assert.Equal(t, "validation failed: a: one; b: two", fe.Error())
	assert.Nil(t, FieldErrors{}.OrNil())
}
