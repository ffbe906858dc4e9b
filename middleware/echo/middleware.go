package echomw

import (
	"github.com/labstack/echo/v4"

	jskema "github.com/reoring/jskema"
	"github.com/reoring/jskema/middleware"
)

// ValidateJSON decodes request JSON, checks it against s and stores the
// instance in the request context; invalid bodies get 422 with an error
// payload.
func ValidateJSON(s *jskema.Schema, opt middleware.Options) echo.MiddlewareFunc {
	if opt == (middleware.Options{}) {
		opt = middleware.DefaultOptions()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := middleware.Validate(s, c.Request().Body, opt)
			if res.Status != 0 {
				return c.JSON(res.Status, res.Payload)
			}
			c.SetRequest(middleware.Store(c.Request(), res.Instance))
			return next(c)
		}
	}
}

// Instance fetches the validated instance from echo.Context.
func Instance(c echo.Context) (any, bool) {
	return middleware.InstanceFromContext(c.Request().Context())
}
