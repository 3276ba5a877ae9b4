package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/tictactoe/internal/api/controller"
)

var tracer = otel.Tracer("ctchen222/tictactoe/internal/server")

type Server struct {
	engine *gin.Engine
}

func NewServer(sessions *controller.SessionController) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), traceRequests())

	s := &Server{engine: engine}
	s.registerHandlers(sessions)
	return s
}

// Engine exposes the gin engine for http.Server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerHandlers(sessions *controller.SessionController) {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api/sessions")
	api.POST("", sessions.Create)
	api.GET("/:id", sessions.Get)
	api.DELETE("/:id", sessions.Delete)
	api.POST("/:id/moves", sessions.Move)
	api.POST("/:id/rounds", sessions.NewRound)
	api.POST("/:id/play-again", sessions.PlayAgain)
	api.POST("/:id/decline", sessions.Decline)
	api.DELETE("/:id/tally", sessions.ResetTally)
}

// traceRequests wraps every request in a span and logs it once handled.
func traceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "server."+c.Request.Method+" "+c.FullPath(), trace.WithAttributes(
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.method", c.Request.Method),
		))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if err := c.Errors.Last(); err != nil {
			span.RecordError(err.Err)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, "Request failed")
			}
		}

		slog.DebugContext(ctx, "http request",
			"http.method", c.Request.Method,
			"http.path", c.Request.URL.Path,
			"http.status_code", status,
			"http.duration", time.Since(start),
		)
	}
}
