package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError captures the metadata required to serialize an error response
// consistently. Only malformed requests produce errors here; astronomical
// degeneracies (polar night, threshold never reached) are valid 200 bodies.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(err.Status, gin.H{
		"error": gin.H{"code": err.Code, "message": err.Message},
	})
}

// notFound handles unknown routes with the same envelope.
func notFound(c *gin.Context) {
	abortWithError(c, NewHTTPError(http.StatusNotFound, "not_found", "no such endpoint", nil))
}
