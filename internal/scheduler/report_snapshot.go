// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/toy-store-api/infrastructure/repository"
	"github.com/vfg2006/toy-store-api/internal/config"
	"github.com/vfg2006/toy-store-api/internal/domain"
	"github.com/vfg2006/toy-store-api/internal/usecases/reporting"
	"github.com/vfg2006/toy-store-api/pkg/metrics"
)

const (
	ReportSnapshotJob = "report-snapshots"

	snapshotWorkers = 4
)

// Job é um serviço agendado que também pode ser disparado manualmente
type Job interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

type ReportSnapshotService struct {
	scheduler    *gocron.Scheduler
	userRepo     repository.UserRepository
	snapshotRepo repository.ReportSnapshotRepository
	aggregator   reporting.SalesAggregator
	config       config.ReportSnapshot
	now          func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastOwners          int
	lastFailures        int
}

// NewReportSnapshotService recebe o agregador sem cache: o snapshot sempre recalcula a partir do banco
func NewReportSnapshotService(
	userRepo repository.UserRepository,
	snapshotRepo repository.ReportSnapshotRepository,
	aggregator reporting.SalesAggregator,
	cfg config.ReportSnapshot,
) *ReportSnapshotService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
	}).Info("Configuração do agendador de snapshots de relatórios carregada")

	return &ReportSnapshotService{
		scheduler:    gocron.NewScheduler(time.Local),
		userRepo:     userRepo,
		snapshotRepo: snapshotRepo,
		aggregator:   aggregator,
		config:       cfg,
		now:          time.Now,
	}
}

func (s *ReportSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshots de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSnapshots(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração de snapshots de relatórios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshots recalcula o top clientes de todos os donos. Falhas de um dono não interrompem os demais.
// Uma execução concorrente é ignorada.
func (s *ReportSnapshotService) RunSnapshots(ctx context.Context) error {
	if !s.begin() {
		logrus.Warn("Geração de snapshots de relatórios já está em execução")
		metrics.SnapshotRunsTotal.WithLabelValues("skipped").Inc()
		return nil
	}

	owners, failures := 0, 0
	defer func() { s.finish(owners, failures) }()

	logrus.Info("Iniciando geração de snapshots de relatórios")

	ownerIDs, err := s.userRepo.ListUserIDs(ctx)
	if err != nil {
		metrics.SnapshotRunsTotal.WithLabelValues("failure").Inc()
		return fmt.Errorf("erro ao listar donos: %w", err)
	}

	owners = len(ownerIDs)
	failures = s.processOwners(ctx, ownerIDs)

	result := "success"
	if failures > 0 {
		result = "partial"
	}
	metrics.SnapshotRunsTotal.WithLabelValues(result).Inc()

	logrus.WithFields(logrus.Fields{
		"owners":   owners,
		"failures": failures,
	}).Info("Geração de snapshots de relatórios concluída")

	return nil
}

func (s *ReportSnapshotService) processOwners(ctx context.Context, ownerIDs []int) int {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)

	jobs := make(chan int)
	for i := 0; i < snapshotWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ownerID := range jobs {
				if err := s.snapshotOwner(ctx, ownerID); err != nil {
					logrus.WithError(err).WithField("owner_id", ownerID).Error("ReportSnapshotService: erro ao gerar snapshot")
					mu.Lock()
					failures++
					mu.Unlock()
				}
			}
		}()
	}

	for _, ownerID := range ownerIDs {
		jobs <- ownerID
	}
	close(jobs)

	wg.Wait()

	return failures
}

func (s *ReportSnapshotService) snapshotOwner(ctx context.Context, ownerID int) error {
	report, err := s.aggregator.GetTopCustomers(ctx, ownerID)
	if err != nil {
		return err
	}

	return s.snapshotRepo.SaveOrUpdate(ctx, &domain.TopCustomersSnapshot{
		OwnerID:    ownerID,
		Report:     *report,
		ComputedAt: s.now(),
	})
}

func (s *ReportSnapshotService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *ReportSnapshotService) finish(owners, failures int) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastOwners = owners
	s.lastFailures = failures
}

// TriggerManualSync inicia a geração em background; devolve false se já houver uma em andamento
func (s *ReportSnapshotService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Geração de snapshots já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando geração manual de snapshots de relatórios")
	go func() {
		if err := s.RunSnapshots(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na geração manual de snapshots de relatórios")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ReportSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_owners":       s.lastOwners,
		"last_sync_failures":     s.lastFailures,
	}
}
