package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/finance-tracker/backend/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const corsMaxAge = 10 * time.Minute

// NewRouter wires the middleware and routes of the service.
func NewRouter(h *Handler, log zerolog.Logger, allowOrigins []string) *gin.Engine {
	allowed := originMatcher(allowOrigins)

	r := gin.New()
	r.Use(logger.Middleware(log))
	r.Use(gin.Recovery())
	r.Use(preflight(allowed))
	r.Use(cors.New(corsConfig(allowed)))

	r.GET("/health", h.Health)
	r.GET("/transactions", h.GetTransactions)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// originMatcher accepts every origin when the list holds "*".
func originMatcher(allowOrigins []string) func(string) bool {
	set := make(map[string]struct{}, len(allowOrigins))
	for _, o := range allowOrigins {
		if o == "*" {
			return func(string) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(origin string) bool {
		_, ok := set[origin]
		return ok
	}
}

// corsConfig allows credentials, so the request origin is echoed instead of "*".
func corsConfig(allowed func(string) bool) cors.Config {
	return cors.Config{
		AllowOriginFunc:  allowed,
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	}
}

// preflight answers CORS preflight requests by echoing the requested method and
// headers. Browsers treat "*" as a literal name once credentials are allowed.
// Anything else, including preflights from unknown origins, goes on to cors.
func preflight(allowed func(string) bool) gin.HandlerFunc {
	maxAge := strconv.FormatInt(int64(corsMaxAge/time.Second), 10)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		method := c.GetHeader("Access-Control-Request-Method")
		if c.Request.Method != http.MethodOptions || origin == "" || method == "" || !allowed(origin) {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", method)
		if headers := c.GetHeader("Access-Control-Request-Headers"); headers != "" {
			c.Header("Access-Control-Allow-Headers", headers)
		}
		c.Header("Access-Control-Max-Age", maxAge)
		c.Writer.Header().Add("Vary", "Origin")
		c.Writer.Header().Add("Vary", "Access-Control-Request-Method")
		c.Writer.Header().Add("Vary", "Access-Control-Request-Headers")
		c.AbortWithStatus(http.StatusNoContent)
	}
}
