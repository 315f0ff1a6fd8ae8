package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bushbass/fcc-jwt/internal/logging"
	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	logger     logging.Logger
}

// NewServer wires the routes onto a gin router. The refresh endpoint path
// must match the cookie scope set in cookie.go.
func NewServer(addr string, allowedOrigin string, handler *Handler, logger logging.Logger) (*Server, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	router.Use(CORSMiddleware(allowedOrigin))

	router.GET("/ping", handler.Ping)
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)
	router.POST("/refresh_token", handler.RefreshToken)
	// Logout lives under the cookie's path scope so browsers and cookie jars
	// actually attach the refresh cookie and revocation can run server-side.
	router.POST("/refresh_token/logout", handler.Logout)
	router.POST("/protected", handler.AuthRequired(), handler.Protected)

	return &Server{
		httpServer: &http.Server{Addr: addr, Handler: router},
		router:     router,
		logger:     logger.With("module", "http_server"),
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "err", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
