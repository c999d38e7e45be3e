package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// peekBody reads the request body for inspection and puts it back so
// the handler can still bind it.
func peekBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))
	return raw, nil
}

// peekJSON decodes the body into v without consuming it. An empty body
// is not an error; v is left untouched.
func peekJSON(c *gin.Context, v any) error {
	raw, err := peekBody(c)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// jsonBody reports whether the request declares a JSON payload. Guards
// peek JSON bodies and fall back to form fields for uploads.
func jsonBody(c *gin.Context) bool {
	ct := c.ContentType()
	return ct == "" || ct == "application/json"
}

// formHas reports whether a form or multipart request carries field.
// Parsing caches on the request, so the handler can still bind the
// form and read uploaded files afterwards.
func formHas(c *gin.Context, field string) bool {
	_ = c.Request.ParseMultipartForm(32 << 20)
	if _, ok := c.Request.PostForm[field]; ok {
		return true
	}
	if c.Request.MultipartForm != nil {
		if _, ok := c.Request.MultipartForm.Value[field]; ok {
			return true
		}
	}
	return false
}
