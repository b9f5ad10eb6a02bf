package alerting

import (
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
)

// AverageGRPEfficiency calcula a eficiência média de GRP do conjunto.
// Campanhas sem eficiência computável ficam fora da média; ok=false
// quando nenhuma campanha contribui.
func AverageGRPEfficiency(campaigns []*domain.Campaign) (average float64, ok bool) {
	var sum float64
	var count int

	for _, campaign := range campaigns {
		if efficiency, computable := GRPEfficiency(campaign); computable {
			sum += efficiency
			count++
		}
	}

	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// CountUnderperformingGRP conta campanhas de TV abaixo do corte de
// eficiência agregado (GRPEfficiencyThreshold). Este corte é distinto do
// déficit em pontos usado no alerta individual.
func CountUnderperformingGRP(campaigns []*domain.Campaign) int {
	var count int

	for _, campaign := range campaigns {
		if campaign.Channel != domain.ChannelTV {
			continue
		}
		if efficiency, computable := GRPEfficiency(campaign); computable && efficiency < GRPEfficiencyThreshold {
			count++
		}
	}

	return count
}
