package scheduler

import (
	"testing"
	"time"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/infrastructure/repository/mocks"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestStatusRefreshService_RefreshStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// datas relativas ao relógio real: o período encerrado há dias e o
	// período futuro dão resultados estáveis independentemente do horário
	pastStart := time.Now().AddDate(0, 0, -30)
	pastEnd := time.Now().AddDate(0, 0, -10)
	futureStart := time.Now().AddDate(0, 0, 10)
	futureEnd := time.Now().AddDate(0, 0, 20)

	campaigns := []*domain.Campaign{
		{
			// período encerrado: ACTIVE vira COMPLETED
			ID:        "CMP001",
			Status:    domain.CampaignStatusActive,
			StartDate: datePtr(pastStart),
			EndDate:   datePtr(pastEnd),
		},
		{
			// já COMPLETED: nada a gravar
			ID:        "CMP002",
			Status:    domain.CampaignStatusCompleted,
			StartDate: datePtr(pastStart),
			EndDate:   datePtr(pastEnd),
		},
		{
			// SCHEDULED sem datas degrada com aviso
			ID:     "CMP003",
			Status: domain.CampaignStatusScheduled,
		},
		{
			// SCHEDULED com datas futuras válidas é mantido
			ID:        "CMP004",
			Status:    domain.CampaignStatusScheduled,
			StartDate: datePtr(futureStart),
			EndDate:   datePtr(futureEnd),
		},
	}

	repo := mocks.NewMockCampaignRepository(ctrl)
	repo.EXPECT().ListRefreshable(200, 0).Return(campaigns, nil)

	repo.EXPECT().UpdateStatus("CMP001", domain.CampaignStatusCompleted).Return(nil)
	repo.EXPECT().UpdateStatus("CMP003", domain.CampaignStatusPlanned).Return(nil)

	service := &StatusRefreshService{
		campaignRepo: repo,
		config:       StatusRefreshConfig{BatchSize: 200},
	}

	summary, err := service.RefreshStatuses()

	assert.NoError(t, err)
	assert.Equal(t, 4, summary.Scanned)
	assert.Equal(t, 2, summary.Updated)
	assert.Equal(t, 1, summary.Notices)
}

func TestStatusRefreshService_RefreshStatuses_EmLotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	futureStart := time.Now().AddDate(0, 0, 10)
	futureEnd := time.Now().AddDate(0, 0, 20)

	planned := func(id string) *domain.Campaign {
		return &domain.Campaign{
			ID:        id,
			Status:    domain.CampaignStatusPlanned,
			StartDate: datePtr(futureStart),
			EndDate:   datePtr(futureEnd),
		}
	}

	repo := mocks.NewMockCampaignRepository(ctrl)

	// lote cheio força a leitura do lote seguinte
	repo.EXPECT().ListRefreshable(2, 0).Return([]*domain.Campaign{
		planned("CMP001"), planned("CMP002"),
	}, nil)
	repo.EXPECT().ListRefreshable(2, 2).Return([]*domain.Campaign{
		planned("CMP003"),
	}, nil)

	service := &StatusRefreshService{
		campaignRepo: repo,
		config:       StatusRefreshConfig{BatchSize: 2},
	}

	summary, err := service.RefreshStatuses()

	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Scanned)
	assert.Equal(t, 0, summary.Updated)
}

func TestStatusRefreshService_RefreshStatuses_ErroNaEscritaNaoInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pastStart := time.Now().AddDate(0, 0, -30)
	pastEnd := time.Now().AddDate(0, 0, -10)

	campaigns := []*domain.Campaign{
		{
			ID:        "CMP001",
			Status:    domain.CampaignStatusActive,
			StartDate: datePtr(pastStart),
			EndDate:   datePtr(pastEnd),
		},
		{
			ID:        "CMP002",
			Status:    domain.CampaignStatusActive,
			StartDate: datePtr(pastStart),
			EndDate:   datePtr(pastEnd),
		},
	}

	repo := mocks.NewMockCampaignRepository(ctrl)
	repo.EXPECT().ListRefreshable(200, 0).Return(campaigns, nil)

	repo.EXPECT().UpdateStatus("CMP001", domain.CampaignStatusCompleted).Return(assert.AnError)
	repo.EXPECT().UpdateStatus("CMP002", domain.CampaignStatusCompleted).Return(nil)

	service := &StatusRefreshService{
		campaignRepo: repo,
		config:       StatusRefreshConfig{BatchSize: 200},
	}

	summary, err := service.RefreshStatuses()

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Scanned)
	assert.Equal(t, 1, summary.Updated)
}

func TestStatusRefreshService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &StatusRefreshService{
		campaignRepo: mocks.NewMockCampaignRepository(ctrl),
		config: StatusRefreshConfig{
			CronSchedule: "0 2 * * *",
			BatchSize:    200,
			Enabled:      true,
		},
	}

	status := service.Status()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 2 * * *", status["cron_schedule"])
	assert.Equal(t, false, status["running"])
	assert.NotContains(t, status, "last_summary")
}
