package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
	"github.com/vcscsvcscs/dosewise/pkg/api"
	"go.uber.org/zap"
)

// OpenAPIValidator rejects requests that do not match the API document.
// Routes absent from the document pass through untouched.
func OpenAPIValidator(doc *openapi3.T, logger *zap.Logger) (gin.HandlerFunc, error) {
	// Servers would make the router match on host as well as path
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build OpenAPI router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
				c.Next()
				return
			}
			logger.Warn("failed to match OpenAPI route", zap.Error(err), zap.String("path", c.Request.URL.Path))
			c.Next()
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options:    options,
		}
		if err := openapi3filter.ValidateRequest(c.Request.Context(), input); err != nil {
			details := err.Error()
			logger.Debug("request rejected by OpenAPI validation",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("reason", details),
			)
			c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{
				Code:    api.VALIDATIONERROR,
				Message: "Request does not match the API contract",
				Details: &details,
			})
			return
		}

		c.Next()
	}, nil
}
