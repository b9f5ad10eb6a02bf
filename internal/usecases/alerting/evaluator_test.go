package alerting

import (
	"testing"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestEvaluateBudgetAlert(t *testing.T) {
	tests := []struct {
		name     string
		campaign *domain.Campaign
		fires    bool
	}{
		{
			name: "verba extra em 40% da principal dispara",
			campaign: &domain.Campaign{
				ID:                "CMP001",
				Name:              "Meta Verão",
				Channel:           domain.ChannelMeta,
				Budget:            10000,
				ExtraSocialBudget: floatPtr(4000),
			},
			fires: true,
		},
		{
			name: "verba extra exatamente em 30% não dispara",
			campaign: &domain.Campaign{
				Channel:           domain.ChannelMeta,
				Budget:            10000,
				ExtraSocialBudget: floatPtr(3000),
			},
			fires: false,
		},
		{
			name: "canal não social nunca dispara",
			campaign: &domain.Campaign{
				Channel:           domain.ChannelTV,
				Budget:            10000,
				ExtraSocialBudget: floatPtr(9000),
			},
			fires: false,
		},
		{
			name: "Google não conta como canal social",
			campaign: &domain.Campaign{
				Channel:           domain.ChannelGoogle,
				Budget:            10000,
				ExtraSocialBudget: floatPtr(9000),
			},
			fires: false,
		},
		{
			name: "verba principal zero nunca dispara",
			campaign: &domain.Campaign{
				Channel:           domain.ChannelTikTok,
				Budget:            0,
				ExtraSocialBudget: floatPtr(5000),
			},
			fires: false,
		},
		{
			name: "sem verba extra não dispara",
			campaign: &domain.Campaign{
				Channel: domain.ChannelMeta,
				Budget:  10000,
			},
			fires: false,
		},
		{
			name: "verba extra zerada não dispara",
			campaign: &domain.Campaign{
				Channel:           domain.ChannelPinterest,
				Budget:            10000,
				ExtraSocialBudget: floatPtr(0),
			},
			fires: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := EvaluateBudgetAlert(tt.campaign)

			if !tt.fires {
				assert.Nil(t, alert)
				return
			}

			assert.NotNil(t, alert)
			assert.Equal(t, tt.campaign.ID, alert.CampaignID)
			assert.Equal(t, tt.campaign.Name, alert.CampaignName)
			assert.InDelta(t, *tt.campaign.ExtraSocialBudget/tt.campaign.Budget, alert.Percentage, 0.0001)
		})
	}
}

func TestEvaluateGRPAlert(t *testing.T) {
	tests := []struct {
		name        string
		campaign    *domain.Campaign
		fires       bool
		expectedGap float64
	}{
		{
			name: "déficit de 15% dispara",
			campaign: &domain.Campaign{
				ID:           "CMP010",
				Name:         "TV Nacional",
				Channel:      domain.ChannelTV,
				ExpectedGrps: floatPtr(100),
				AchievedGrps: floatPtr(85),
			},
			fires:       true,
			expectedGap: 15.0,
		},
		{
			name: "déficit de 9% não dispara",
			campaign: &domain.Campaign{
				Channel:      domain.ChannelTV,
				ExpectedGrps: floatPtr(100),
				AchievedGrps: floatPtr(91),
			},
			fires: false,
		},
		{
			name: "déficit exatamente em 10 pontos não dispara",
			campaign: &domain.Campaign{
				Channel:      domain.ChannelTV,
				ExpectedGrps: floatPtr(100),
				AchievedGrps: floatPtr(90),
			},
			fires: false,
		},
		{
			name: "entrega acima do planejado não dispara",
			campaign: &domain.Campaign{
				Channel:      domain.ChannelTV,
				ExpectedGrps: floatPtr(100),
				AchievedGrps: floatPtr(110),
			},
			fires: false,
		},
		{
			name: "canal fora de TV não dispara",
			campaign: &domain.Campaign{
				Channel:      domain.ChannelRadio,
				ExpectedGrps: floatPtr(100),
				AchievedGrps: floatPtr(40),
			},
			fires: false,
		},
		{
			name: "planejado zero não dispara",
			campaign: &domain.Campaign{
				Channel:      domain.ChannelTV,
				ExpectedGrps: floatPtr(0),
				AchievedGrps: floatPtr(0),
			},
			fires: false,
		},
		{
			name: "sem GRP alcançado não dispara",
			campaign: &domain.Campaign{
				Channel:      domain.ChannelTV,
				ExpectedGrps: floatPtr(100),
			},
			fires: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := EvaluateGRPAlert(tt.campaign)

			if !tt.fires {
				assert.Nil(t, alert)
				return
			}

			assert.NotNil(t, alert)
			assert.Equal(t, tt.campaign.ID, alert.CampaignID)
			assert.InDelta(t, tt.expectedGap, alert.PerformanceGapPercent, 0.0001)
		})
	}
}

func TestEvaluateHighCPLAlert(t *testing.T) {
	assert.True(t, EvaluateHighCPLAlert(&domain.Campaign{CostPerLead: floatPtr(150.01)}))
	assert.True(t, EvaluateHighCPLAlert(&domain.Campaign{CostPerLead: floatPtr(400)}))

	// valor exatamente no limite não dispara
	assert.False(t, EvaluateHighCPLAlert(&domain.Campaign{CostPerLead: floatPtr(150.0)}))
	assert.False(t, EvaluateHighCPLAlert(&domain.Campaign{CostPerLead: floatPtr(80)}))
	assert.False(t, EvaluateHighCPLAlert(&domain.Campaign{}))
}

func TestDetectPerformanceAlerts(t *testing.T) {
	campaigns := []*domain.Campaign{
		{
			// CPL alto e déficit de GRP: gera dois alertas
			ID:           "CMP001",
			Name:         "TV Inverno",
			Channel:      domain.ChannelTV,
			CostPerLead:  floatPtr(200),
			ExpectedGrps: floatPtr(100),
			AchievedGrps: floatPtr(70),
		},
		{
			// verba social estourada NÃO entra nos alertas de performance
			ID:                "CMP002",
			Name:              "Meta Social",
			Channel:           domain.ChannelMeta,
			Budget:            1000,
			ExtraSocialBudget: floatPtr(900),
		},
		{
			ID:          "CMP003",
			Name:        "Google Saudável",
			Channel:     domain.ChannelGoogle,
			CostPerLead: floatPtr(90),
		},
	}

	alerts := DetectPerformanceAlerts(campaigns)

	assert.Len(t, alerts, 2)

	assert.Equal(t, "CMP001", alerts[0].CampaignID)
	assert.Equal(t, domain.AlertTypeHighCPL, alerts[0].Type)
	assert.Equal(t, 200.0, alerts[0].Value)

	assert.Equal(t, "CMP001", alerts[1].CampaignID)
	assert.Equal(t, domain.AlertTypeGRPShortfall, alerts[1].Type)
	assert.Equal(t, 30.0, alerts[1].Value)
}

func TestDetectPerformanceAlerts_SemCampanhas(t *testing.T) {
	alerts := DetectPerformanceAlerts(nil)

	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		threshold float64
		expected  domain.AlertSeverity
	}{
		{
			name:      "pouco acima do limite é low",
			value:     160,
			threshold: 150,
			expected:  domain.AlertSeverityLow,
		},
		{
			name:      "exatamente 1.5x ainda é low",
			value:     225,
			threshold: 150,
			expected:  domain.AlertSeverityLow,
		},
		{
			name:      "acima de 1.5x é medium",
			value:     240,
			threshold: 150,
			expected:  domain.AlertSeverityMedium,
		},
		{
			name:      "exatamente 2x ainda é medium",
			value:     300,
			threshold: 150,
			expected:  domain.AlertSeverityMedium,
		},
		{
			name:      "acima de 2x é high",
			value:     301,
			threshold: 150,
			expected:  domain.AlertSeverityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, severityFor(tt.value, tt.threshold))
		})
	}
}
