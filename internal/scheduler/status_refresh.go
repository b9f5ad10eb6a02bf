// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/infrastructure/repository"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/config"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/usecases/statusing"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

type StatusRefreshConfig struct {
	CronSchedule string
	BatchSize    int
	Enabled      bool
}

// RefreshSummary resume uma execução da varredura de status
type RefreshSummary struct {
	Scanned int       `json:"scanned"`
	Updated int       `json:"updated"`
	Notices int       `json:"notices"`
	RanAt   time.Time `json:"ran_at"`
}

// StatusRefreshService reavalia diariamente o status das campanhas pelo
// período de veiculação e persiste apenas os que mudaram
type StatusRefreshService struct {
	scheduler           *gocron.Scheduler
	campaignRepo        repository.CampaignRepository
	config              StatusRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *RefreshSummary
}

func NewStatusRefreshService(
	campaignRepo repository.CampaignRepository,
	cfg *config.Config,
) *StatusRefreshService {
	refreshConfig := StatusRefreshConfig{
		CronSchedule: cfg.StatusRefresh.CronSchedule, // Default: 2h da manhã todos os dias
		BatchSize:    cfg.StatusRefresh.BatchSize,
		Enabled:      cfg.StatusRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"batch_size":    refreshConfig.BatchSize,
	}).Info("Configuração da varredura de status carregada")

	return &StatusRefreshService{
		scheduler:    scheduler,
		campaignRepo: campaignRepo,
		config:       refreshConfig,
	}
}

func (s *StatusRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Varredura diária de status desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron da varredura de status de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RefreshStatuses(); err != nil {
			logrus.WithError(err).Error("Erro na varredura de status de campanhas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de status: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron da varredura de status")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshStatuses percorre as campanhas não canceladas em lotes e aplica
// a política de status, gravando somente quando o valor derivado difere
// do armazenado. Pode ser disparada manualmente via API.
func (s *StatusRefreshService) RefreshStatuses() (*RefreshSummary, error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Varredura de status já está em execução")
		return s.lastSummary, nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando varredura de status de campanhas")

	now := time.Now()
	summary := &RefreshSummary{RanAt: now}

	batchSize := s.config.BatchSize
	if batchSize <= 0 {
		batchSize = 200
	}

	for offset := 0; ; offset += batchSize {
		campaigns, err := s.campaignRepo.ListRefreshable(batchSize, offset)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar lote de campanhas para varredura")
			return summary, err
		}

		if len(campaigns) == 0 {
			break
		}

		for _, campaign := range campaigns {
			summary.Scanned++

			resolution := statusing.ResolveDisplayStatus(campaign, now)
			if !resolution.Changed {
				continue
			}

			if err := s.campaignRepo.UpdateStatus(campaign.ID, resolution.Status); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"campaign_id": campaign.ID,
					"from":        campaign.Status,
					"to":          resolution.Status,
				}).Error("Erro ao atualizar status da campanha")
				continue
			}

			summary.Updated++
			if resolution.Notice != "" {
				summary.Notices++
				logrus.WithFields(logrus.Fields{
					"campaign_id": campaign.ID,
					"notice":      resolution.Notice,
				}).Warn("Campanha degradada pela varredura de status")
			}
		}

		if len(campaigns) < batchSize {
			break
		}
	}

	s.lastSummary = summary

	logrus.WithFields(logrus.Fields{
		"scanned": summary.Scanned,
		"updated": summary.Updated,
	}).Info("Varredura de status de campanhas concluída")

	return summary, nil
}

// Status expõe o estado da varredura para o endpoint de monitoramento
func (s *StatusRefreshService) Status() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]interface{}{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_started_at"] = s.lastSyncStartedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_completed_at"] = s.lastSyncCompletedAt
	}
	if s.lastSummary != nil {
		status["last_summary"] = s.lastSummary
	}

	return status
}
