package ginmw

import (
	"github.com/gin-gonic/gin"

	jskema "github.com/reoring/jskema"
	"github.com/reoring/jskema/middleware"
)

// ValidateJSON decodes the request body, checks it against s and stores the
// instance in the request context. Invalid bodies abort with 422 and an
// {"errors": [...]} payload; undecodable ones with 400. A zero opt selects
// middleware.DefaultOptions.
func ValidateJSON(s *jskema.Schema, opt middleware.Options) gin.HandlerFunc {
	if opt == (middleware.Options{}) {
		opt = middleware.DefaultOptions()
	}
	return func(c *gin.Context) {
		res := middleware.Validate(s, c.Request.Body, opt)
		if res.Status != 0 {
			c.AbortWithStatusJSON(res.Status, res.Payload)
			return
		}
		c.Request = middleware.Store(c.Request, res.Instance)
		c.Next()
	}
}

// Instance fetches the validated instance from gin.Context.
func Instance(c *gin.Context) (any, bool) {
	return middleware.InstanceFromContext(c.Request.Context())
}
