package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

var errEmptyBody = errors.New("empty request body")

// BindNestedOrFlat decodes the body into obj. Clients send either the
// resource wrapped under its name ({"proposal": {...}}) or the bare object;
// both are accepted. The body is restored so later reads still see it.
func BindNestedOrFlat(c *gin.Context, key string, obj any) error {
	if c.Request.Body == nil {
		return errEmptyBody
	}
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if len(bytes.TrimSpace(raw)) == 0 {
		return errEmptyBody
	}

	var envelope map[string]json.RawMessage
	if json.Unmarshal(raw, &envelope) == nil {
		if inner, ok := envelope[key]; ok {
			return json.Unmarshal(inner, obj)
		}
	}
	return json.Unmarshal(raw, obj)
}
