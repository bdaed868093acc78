package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a 500 envelope. The panic value and
// stack go to gin's error writer, never to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(gin.DefaultErrorWriter, "panic recovered: %v\n%s\n", r, debug.Stack())
				if !c.Writer.Written() {
					response.Error(c, http.StatusInternalServerError, "internal server error")
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
