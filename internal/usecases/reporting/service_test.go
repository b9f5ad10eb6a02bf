package reporting

import (
	"testing"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/infrastructure/repository/mocks"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/utils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func TestService_DashboardSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaigns := []*domain.Campaign{
		{
			ID:                "CMP001",
			Channel:           domain.ChannelMeta,
			Status:            domain.CampaignStatusActive,
			StartDate:         utils.DatePtr(2025, 1, 10),
			Budget:            10000,
			ExtraSocialBudget: floatPtr(2000),
			Leads:             intPtr(100),
			CostPerLead:       floatPtr(100),
		},
		{
			ID:           "CMP002",
			Channel:      domain.ChannelTV,
			Status:       domain.CampaignStatusCompleted,
			StartDate:    utils.DatePtr(2024, 12, 1),
			Budget:       50000,
			ExpectedGrps: floatPtr(100),
			AchievedGrps: floatPtr(80),
			Leads:        intPtr(50),
			CostPerLead:  floatPtr(200),
		},
		{
			// status legado conta no agrupamento já convertido
			ID:      "CMP003",
			Channel: domain.ChannelMeta,
			Status:  domain.LegacyStatusPending,
			Budget:  5000,
		},
	}

	repo := mocks.NewMockCampaignRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(campaigns, nil)

	service := NewService(repo)
	summary, err := service.DashboardSummary(domain.CampaignFilter{})

	assert.NoError(t, err)

	assert.Equal(t, 3, summary.TotalCampaigns)
	assert.Equal(t, 65000.0, summary.TotalBudget)
	assert.Equal(t, 2000.0, summary.TotalExtraSocial)
	assert.Equal(t, 150, summary.TotalLeads)
	assert.Equal(t, 150.0, summary.AverageCostPerLead)

	assert.Equal(t, 1, summary.CountByStatus[domain.CampaignStatusActive])
	assert.Equal(t, 1, summary.CountByStatus[domain.CampaignStatusCompleted])
	assert.Equal(t, 1, summary.CountByStatus[domain.CampaignStatusPlanned])

	assert.Equal(t, 15000.0, summary.BudgetByChannel[domain.ChannelMeta])
	assert.Equal(t, 50000.0, summary.BudgetByChannel[domain.ChannelTV])

	// só CMP002 tem eficiência computável: 80/100
	assert.NotNil(t, summary.AverageGRPEfficiency)
	assert.InDelta(t, 0.8, *summary.AverageGRPEfficiency, 0.0001)
	assert.Equal(t, 1, summary.UnderperformingGRPTV)

	// meses em ordem cronológica, campanha sem data de início fica de fora
	assert.Len(t, summary.BudgetByMonth, 2)
	assert.Equal(t, "12-2024", summary.BudgetByMonth[0].Month)
	assert.Equal(t, 50000.0, summary.BudgetByMonth[0].Budget)
	assert.Equal(t, "01-2025", summary.BudgetByMonth[1].Month)
	assert.Equal(t, 10000.0, summary.BudgetByMonth[1].Budget)
}

func TestService_DashboardSummary_SemCampanhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCampaignRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return([]*domain.Campaign{}, nil)

	service := NewService(repo)
	summary, err := service.DashboardSummary(domain.CampaignFilter{})

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.TotalCampaigns)
	assert.Equal(t, 0.0, summary.AverageCostPerLead)
	assert.Nil(t, summary.AverageGRPEfficiency)
	assert.Empty(t, summary.BudgetByMonth)
}

func TestService_DashboardAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	campaigns := []*domain.Campaign{
		{
			// verba social estourada: alerta de verba, não de performance
			ID:                "CMP001",
			Name:              "Meta Verão",
			Channel:           domain.ChannelMeta,
			Budget:            1000,
			ExtraSocialBudget: floatPtr(450),
		},
		{
			// CPL alto: alerta de performance
			ID:          "CMP002",
			Name:        "Google Inverno",
			Channel:     domain.ChannelGoogle,
			CostPerLead: floatPtr(320),
		},
	}

	repo := mocks.NewMockCampaignRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(campaigns, nil)

	service := NewService(repo)
	alerts, err := service.DashboardAlerts(domain.CampaignFilter{})

	assert.NoError(t, err)

	assert.Len(t, alerts.Budget, 1)
	assert.Equal(t, "CMP001", alerts.Budget[0].CampaignID)
	assert.Equal(t, 0.45, alerts.Budget[0].Percentage)

	assert.Len(t, alerts.Performance, 1)
	assert.Equal(t, "CMP002", alerts.Performance[0].CampaignID)
	assert.Equal(t, domain.AlertTypeHighCPL, alerts.Performance[0].Type)
	assert.Equal(t, domain.AlertSeverityHigh, alerts.Performance[0].Severity)
}

func TestService_DashboardAlerts_RepoComErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCampaignRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(nil, assert.AnError)

	service := NewService(repo)
	alerts, err := service.DashboardAlerts(domain.CampaignFilter{})

	assert.Error(t, err)
	assert.Nil(t, alerts)
}
