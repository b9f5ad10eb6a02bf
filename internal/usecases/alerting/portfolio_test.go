package alerting

import (
	"testing"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAverageGRPEfficiency(t *testing.T) {
	tests := []struct {
		name       string
		campaigns  []*domain.Campaign
		expected   float64
		computable bool
	}{
		{
			name: "média considera apenas campanhas computáveis",
			campaigns: []*domain.Campaign{
				{ExpectedGrps: floatPtr(100), AchievedGrps: floatPtr(80)},
				{ExpectedGrps: floatPtr(100), AchievedGrps: floatPtr(100)},
				// sem dados: fica fora da média, não conta como zero
				{},
				{ExpectedGrps: floatPtr(0), AchievedGrps: floatPtr(50)},
			},
			expected:   0.9,
			computable: true,
		},
		{
			name: "nenhuma campanha computável",
			campaigns: []*domain.Campaign{
				{},
				{ExpectedGrps: floatPtr(0)},
			},
			computable: false,
		},
		{
			name:       "conjunto vazio",
			campaigns:  nil,
			computable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			average, ok := AverageGRPEfficiency(tt.campaigns)

			assert.Equal(t, tt.computable, ok)
			if tt.computable {
				assert.InDelta(t, tt.expected, average, 0.0001)
			}
		})
	}
}

func TestCountUnderperformingGRP(t *testing.T) {
	campaigns := []*domain.Campaign{
		// TV abaixo do corte de 90%: conta
		{Channel: domain.ChannelTV, ExpectedGrps: floatPtr(100), AchievedGrps: floatPtr(85)},
		// TV exatamente no corte: não conta
		{Channel: domain.ChannelTV, ExpectedGrps: floatPtr(100), AchievedGrps: floatPtr(90)},
		// TV acima do corte: não conta
		{Channel: domain.ChannelTV, ExpectedGrps: floatPtr(100), AchievedGrps: floatPtr(95)},
		// canal fora de TV com eficiência baixa: não conta
		{Channel: domain.ChannelRadio, ExpectedGrps: floatPtr(100), AchievedGrps: floatPtr(10)},
		// TV sem dados: não conta
		{Channel: domain.ChannelTV},
	}

	assert.Equal(t, 1, CountUnderperformingGRP(campaigns))
}
