package serializer

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// Bind reads the request body into Fields. Form and multipart bodies are
// accepted next to JSON; anything else is parsed as JSON.
func Bind(c *gin.Context) (Fields, error) {
	switch c.ContentType() {
	case gin.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, &ParseError{Format: "Form", Err: err}
		}
		return FromValues(c.Request.PostForm), nil
	case gin.MIMEMultipartPOSTForm:
		form, err := c.MultipartForm()
		if err != nil {
			return nil, &ParseError{Format: "Multipart form", Err: err}
		}
		return FromValues(url.Values(form.Value)), nil
	default:
		return DecodeJSON(c.Request.Body)
	}
}
