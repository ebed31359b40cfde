package response

import (
	"github.com/gin-gonic/gin"
)

// Page is the collection payload the console's data grids consume:
// the rows for one window plus the filtered total.
type Page struct {
	Content       any   `json:"content"`
	TotalElements int64 `json:"totalElements"`
}

type envelope struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success writes a single entity or ad-hoc payload under "data".
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Data: data})
}

// Paged writes one page of rows with the total row count.
func Paged(c *gin.Context, status int, content any, total int64) {
	c.JSON(status, envelope{Data: Page{Content: content, TotalElements: total}})
}

// Error writes a failure body. The message is what the console surfaces to
// the user verbatim, so it must already be user-readable.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Message: message})
}
