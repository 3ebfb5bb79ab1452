package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"cargo-dispatch/internal/config"
	"cargo-dispatch/internal/dispatch-service/adapters/driven/bm"
	"cargo-dispatch/internal/dispatch-service/adapters/driven/db"
	"cargo-dispatch/internal/dispatch-service/adapters/driver/myhttp/handle"
	"cargo-dispatch/internal/dispatch-service/adapters/driver/myhttp/middleware"
	"cargo-dispatch/internal/dispatch-service/core/ports"
	"cargo-dispatch/internal/dispatch-service/core/service"
	"cargo-dispatch/internal/mylogger"
)

const WaitTime = 10

type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	srv    *http.Server
	mylog  mylogger.Logger
	db     *db.DB
	mb     ports.IOrderBroker
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
	wg     sync.WaitGroup
}

func NewServer(ctx, appCtx context.Context, mylog mylogger.Logger, cfg *config.Config) *Server {
	s := &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    http.NewServeMux(),
	}

	return s
}

// Run initializes routes and starts listening. It returns when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	// Initialize database connection
	database, err := db.New(s.ctx, s.cfg.DB, mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = database
	mylog.Info("Successful database connection")

	// Initialize RabbitMQ connection
	mb, err := bm.New(s.appCtx, *s.cfg.RabbitMq, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.mb = mb
	mylog.Info("Successful message broker connection")

	// Configure routes and handlers
	if err := s.Configure(); err != nil {
		return err
	}

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", s.cfg.Srv.DispatchServicePort),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.Srv.DispatchServicePort)

	mylog.Info("server is running")
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Info("Shutting down HTTP server...")

	s.wg.Wait()

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Error("Failed to close message broker", err)
		} else {
			s.mylog.Info("Message broker closed")
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mylog.Error("Failed to close database", err)
			return fmt.Errorf("db close: %w", err)
		}
		s.mylog.Info("Database closed")
	}

	s.mylog.Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure sets up the HTTP handlers for user and order APIs. A broken
// token configuration surfaces here and aborts startup.
func (s *Server) Configure() error {
	// Repositories
	userRepo := db.NewUserRepo(s.db)
	orderRepo := db.NewOrderRepo(s.db)

	// Token service and hasher
	tokens, err := service.NewTokenService(s.cfg.Auth.JwtSecret, s.cfg.Auth.JwtAlgorithm)
	if err != nil {
		return fmt.Errorf("failed to configure token service: %w", err)
	}
	hasher := service.NewHasher()

	// Services
	authService := service.NewAuthService(userRepo, hasher, tokens, s.mylog)
	orderService := service.NewOrderService(orderRepo, s.mb, s.mylog)

	// Handlers
	userHandler := handle.NewUserHandler(authService, s.mylog)
	orderHandler := handle.NewOrderHandler(orderService, s.mylog)

	authMiddleware := middleware.NewAuthMiddleware(tokens, s.mylog)

	// Register routes
	s.mux.Handle("POST /user/reg", userHandler.Register())
	s.mux.Handle("POST /user/auth", userHandler.Login())

	s.mux.Handle("POST /order/create", authMiddleware.Wrap(orderHandler.Create()))
	s.mux.Handle("POST /order/take", authMiddleware.Wrap(orderHandler.Take()))
	s.mux.Handle("POST /order/avaliable", authMiddleware.Wrap(orderHandler.Available()))
	s.mux.Handle("POST /order/my", authMiddleware.Wrap(orderHandler.Mine()))
	s.mux.Handle("DELETE /order/remove", authMiddleware.Wrap(orderHandler.Remove()))

	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return nil
}
