package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/pagination"
	"library-api/internal/shared/serializer"
)

// Envelope status values
const (
	StatusFailed  = 0
	StatusSuccess = 1
)

const (
	MsgNotFound       = "Not found."
	MsgInternalServer = "Internal server error"
)

// Response is the envelope every endpoint answers with.
// Message is a string on success and a field → messages object on validation failure.
type Response struct {
	Status    int                   `json:"status"`
	Message   interface{}           `json:"message"`
	Data      interface{}           `json:"data,omitempty"`
	Paginator *pagination.Paginator `json:"paginator,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func SuccessWithPaginator(c *gin.Context, message string, data interface{}, p pagination.Paginator) {
	c.JSON(http.StatusOK, Response{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Paginator: &p,
	})
}

// Error responses
func Error(c *gin.Context, statusCode int, message interface{}) {
	c.JSON(statusCode, Response{
		Status:  StatusFailed,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message interface{}) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, MsgNotFound)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, MsgInternalServer)
}

func ServiceUnavailable(c *gin.Context, message string) {
	Error(c, http.StatusServiceUnavailable, message)
}

// Invalid answers a request whose body failed to parse or validate.
// It reports false if err is neither, leaving the response unwritten.
func Invalid(c *gin.Context, err error) bool {
	if fe, ok := serializer.AsFieldErrors(err); ok {
		BadRequest(c, fe)
		return true
	}
	var pe *serializer.ParseError
	if errors.As(err, &pe) {
		BadRequest(c, pe.Error())
		return true
	}
	return false
}
