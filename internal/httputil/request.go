package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// BindPatch binds the request body on top of data. Fields that are not in the
// body keep their value, which makes data a partial update of a resource.
//
// The body is restored so that it can be read again.
func BindPatch(c *gin.Context, data any) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ErrInvalidBody
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return ErrRequestBodyEmpty
	}

	err = json.Unmarshal(body, data)
	if err != nil {
		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// ContextKey is the type for keys of values set on the gin context.
type ContextKey string

// ContextURL holds the external base URL of the API.
const ContextURL ContextKey = "finsight-api-url"

// BaseURL returns the external base URL of the API for the request.
func BaseURL(c *gin.Context) string {
	return c.GetString(string(ContextURL))
}
