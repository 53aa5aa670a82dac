package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/doodlesbykumbi/story-in-go/pkg/config"
	"github.com/doodlesbykumbi/story-in-go/pkg/server/middleware"
	"github.com/doodlesbykumbi/story-in-go/pkg/server/store"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	Settings    *config.Settings
	HealthStore store.HealthStore
	// Router is the root router; API is mounted on it at the API prefix.
	Router *mux.Router
	API    *mux.Router
	srv    *http.Server
}

func NewServer(
	settings *config.Settings,
	healthStore store.HealthStore,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	api := router
	if prefix := NormalizePrefix(settings.APIPrefix()); prefix != "" {
		api = router.PathPrefix(prefix).Subrouter()
	}

	var accessLog io.Writer = logrus.StandardLogger().Writer()
	handler := middleware.RequestID(
		handlers.LoggingHandler(accessLog,
			middleware.CORS(settings.AllowedOriginsList())(router),
		),
	)

	srv := &http.Server{
		Handler:      handler,
		Addr:         net.JoinHostPort(host, port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Settings:    settings,
		HealthStore: healthStore,
		Router:      router,
		API:         api,
		srv:         srv,
	}
}

// Handler returns the fully wrapped root handler.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logrus.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}

// NormalizePrefix returns prefix with a single leading slash and no trailing
// slash. The root prefix normalizes to "".
func NormalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
