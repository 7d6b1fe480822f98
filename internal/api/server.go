package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/toy-store-api/internal/api/handler"
	"github.com/vfg2006/toy-store-api/internal/api/handler/router"
	"github.com/vfg2006/toy-store-api/internal/config"
	"github.com/vfg2006/toy-store-api/internal/usecases/authenticating"
	"github.com/vfg2006/toy-store-api/internal/usecases/customer"
	"github.com/vfg2006/toy-store-api/internal/usecases/reporting"
	"github.com/vfg2006/toy-store-api/internal/usecases/selling"
	"github.com/vfg2006/toy-store-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services reúne as dependências expostas pelas rotas HTTP
type Services struct {
	DB            handler.Pinger
	Authenticator authenticating.Authenticator
	Customers     customer.CustomerService
	Sales         selling.SaleService
	Reports       reporting.SalesAggregator
	Snapshots     handler.SnapshotReader
	CronJobs      handler.CronJobs
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// NewHandler monta as rotas com a cadeia de middlewares globais
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Customers(services.Customers)...),
		router.WithRoutes(handler.Sales(services.Sales)...),
		router.WithRoutes(handler.Stats(services.Reports, services.Snapshots)...),
		router.WithRoutes(handler.Cron(services.CronJobs)...),
	)

	return alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	).Then(rt)
}

// Run bloqueia até receber SIGINT/SIGTERM ou o cancelamento do contexto e então desliga o servidor
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case err := <-errCh:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
