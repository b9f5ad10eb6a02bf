package statusing

import (
	"testing"
	"time"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestMigrateLegacyStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      domain.CampaignStatus
		expected domain.CampaignStatus
	}{
		{
			name:     "PENDING legado vira PLANNED",
			raw:      domain.LegacyStatusPending,
			expected: domain.CampaignStatusPlanned,
		},
		{
			name:     "LOADED legado vira SCHEDULED",
			raw:      domain.LegacyStatusLoaded,
			expected: domain.CampaignStatusScheduled,
		},
		{
			name:     "OK legado vira ACTIVE",
			raw:      domain.LegacyStatusOK,
			expected: domain.CampaignStatusActive,
		},
		{
			name:     "status canônico passa inalterado",
			raw:      domain.CampaignStatusCompleted,
			expected: domain.CampaignStatusCompleted,
		},
		{
			name:     "valor desconhecido passa inalterado",
			raw:      domain.CampaignStatus("ARQUIVADA"),
			expected: domain.CampaignStatus("ARQUIVADA"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MigrateLegacyStatus(tt.raw)
			assert.Equal(t, tt.expected, result)

			// aplicar duas vezes não pode mudar o resultado
			assert.Equal(t, tt.expected, MigrateLegacyStatus(result))
		})
	}
}

func TestResolveAutoStatus(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		expected domain.CampaignStatus
	}{
		{
			name:     "antes do início é PLANNED",
			now:      time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: domain.CampaignStatusPlanned,
		},
		{
			name:     "primeiro dia às 00:00 já é ACTIVE",
			now:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: domain.CampaignStatusActive,
		},
		{
			name:     "meio do período é ACTIVE",
			now:      time.Date(2025, 1, 15, 12, 30, 0, 0, time.UTC),
			expected: domain.CampaignStatusActive,
		},
		{
			name:     "último dia às 23:59 ainda é ACTIVE",
			now:      time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC),
			expected: domain.CampaignStatusActive,
		},
		{
			name:     "dia seguinte ao fim é COMPLETED",
			now:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			expected: domain.CampaignStatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolveAutoStatus(start, end, tt.now)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolveAutoStatus_CampanhaDeUmDia(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// campanha com início e fim no mesmo dia fica ACTIVE o dia todo
	assert.Equal(t, domain.CampaignStatusActive,
		ResolveAutoStatus(day, day, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, domain.CampaignStatusActive,
		ResolveAutoStatus(day, day, time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)))

	assert.Equal(t, domain.CampaignStatusPlanned,
		ResolveAutoStatus(day, day, time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, domain.CampaignStatusCompleted,
		ResolveAutoStatus(day, day, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)))
}

func TestResolveAutoStatus_HorarioDoNowNaoInfluencia(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	// qualquer horário dentro do mesmo dia produz o mesmo status
	morning := time.Date(2025, 6, 30, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, ResolveAutoStatus(start, end, morning), ResolveAutoStatus(start, end, night))
}

func TestResolveDisplayStatus(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		campaign       *domain.Campaign
		expectedStatus domain.CampaignStatus
		expectedChange bool
		expectedNotice string
	}{
		{
			name: "CANCELLED nunca é reatribuído mesmo com período ativo",
			campaign: &domain.Campaign{
				Status:    domain.CampaignStatusCancelled,
				StartDate: utils.DatePtr(2025, 1, 1),
				EndDate:   utils.DatePtr(2025, 1, 31),
			},
			expectedStatus: domain.CampaignStatusCancelled,
			expectedChange: false,
		},
		{
			name: "SCHEDULED com datas válidas é mantido",
			campaign: &domain.Campaign{
				Status:    domain.CampaignStatusScheduled,
				StartDate: utils.DatePtr(2025, 2, 1),
				EndDate:   utils.DatePtr(2025, 2, 28),
			},
			expectedStatus: domain.CampaignStatusScheduled,
			expectedChange: false,
		},
		{
			name: "SCHEDULED sem data final degrada para PLANNED com aviso",
			campaign: &domain.Campaign{
				Status:    domain.CampaignStatusScheduled,
				StartDate: utils.DatePtr(2025, 2, 1),
			},
			expectedStatus: domain.CampaignStatusPlanned,
			expectedChange: true,
			expectedNotice: ScheduledDatesNotice,
		},
		{
			name: "SCHEDULED com datas invertidas degrada para PLANNED com aviso",
			campaign: &domain.Campaign{
				Status:    domain.CampaignStatusScheduled,
				StartDate: utils.DatePtr(2025, 2, 28),
				EndDate:   utils.DatePtr(2025, 2, 1),
			},
			expectedStatus: domain.CampaignStatusPlanned,
			expectedChange: true,
			expectedNotice: ScheduledDatesNotice,
		},
		{
			name: "PLANNED com período em curso vira ACTIVE",
			campaign: &domain.Campaign{
				Status:    domain.CampaignStatusPlanned,
				StartDate: utils.DatePtr(2025, 1, 1),
				EndDate:   utils.DatePtr(2025, 1, 31),
			},
			expectedStatus: domain.CampaignStatusActive,
			expectedChange: true,
		},
		{
			name: "ACTIVE com período encerrado vira COMPLETED",
			campaign: &domain.Campaign{
				Status:    domain.CampaignStatusActive,
				StartDate: utils.DatePtr(2024, 12, 1),
				EndDate:   utils.DatePtr(2024, 12, 31),
			},
			expectedStatus: domain.CampaignStatusCompleted,
			expectedChange: true,
		},
		{
			name: "status derivado igual ao atual não reporta mudança",
			campaign: &domain.Campaign{
				Status:    domain.CampaignStatusActive,
				StartDate: utils.DatePtr(2025, 1, 1),
				EndDate:   utils.DatePtr(2025, 1, 31),
			},
			expectedStatus: domain.CampaignStatusActive,
			expectedChange: false,
		},
		{
			name: "sem datas o status degrada para PLANNED",
			campaign: &domain.Campaign{
				Status: domain.CampaignStatusActive,
			},
			expectedStatus: domain.CampaignStatusPlanned,
			expectedChange: true,
		},
		{
			name: "datas invertidas fora de SCHEDULED degradam sem aviso",
			campaign: &domain.Campaign{
				Status:    domain.CampaignStatusPlanned,
				StartDate: utils.DatePtr(2025, 1, 31),
				EndDate:   utils.DatePtr(2025, 1, 1),
			},
			expectedStatus: domain.CampaignStatusPlanned,
			expectedChange: false,
		},
		{
			name: "código legado OK migra e reporta mudança mesmo sem transição",
			campaign: &domain.Campaign{
				Status:    domain.LegacyStatusOK,
				StartDate: utils.DatePtr(2025, 1, 1),
				EndDate:   utils.DatePtr(2025, 1, 31),
			},
			expectedStatus: domain.CampaignStatusActive,
			expectedChange: true,
		},
		{
			name: "código legado LOADED com datas válidas vira SCHEDULED persistível",
			campaign: &domain.Campaign{
				Status:    domain.LegacyStatusLoaded,
				StartDate: utils.DatePtr(2025, 2, 1),
				EndDate:   utils.DatePtr(2025, 2, 28),
			},
			expectedStatus: domain.CampaignStatusScheduled,
			expectedChange: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolution := ResolveDisplayStatus(tt.campaign, now)

			assert.Equal(t, tt.expectedStatus, resolution.Status)
			assert.Equal(t, tt.expectedChange, resolution.Changed)
			assert.Equal(t, tt.expectedNotice, resolution.Notice)
		})
	}
}

func TestIsScheduledEligible(t *testing.T) {
	assert.True(t, IsScheduledEligible(utils.DatePtr(2025, 1, 1), utils.DatePtr(2025, 1, 31)))
	assert.True(t, IsScheduledEligible(utils.DatePtr(2025, 1, 1), utils.DatePtr(2025, 1, 1)))

	assert.False(t, IsScheduledEligible(nil, utils.DatePtr(2025, 1, 31)))
	assert.False(t, IsScheduledEligible(utils.DatePtr(2025, 1, 1), nil))
	assert.False(t, IsScheduledEligible(nil, nil))
	assert.False(t, IsScheduledEligible(utils.DatePtr(2025, 1, 31), utils.DatePtr(2025, 1, 1)))
}
