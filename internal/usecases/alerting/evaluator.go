// Package alerting classifica campanhas em alertas de performance e de
// verba para destaque no dashboard. Funções puras, sem estado e sem I/O;
// cada campanha é avaliada de forma independente.
package alerting

import (
	"fmt"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/utils"
)

// Limites de alerta. Os valores precisam bater exatamente com os usados
// pelos dashboards existentes; não alterar sem migrar os dados exibidos.
const (
	// BudgetAlertThreshold é a fração máxima da verba principal que a
	// verba social adicional pode atingir sem alerta (30%)
	BudgetAlertThreshold = 0.30

	// HighCPLThreshold é o custo por lead acima do qual a campanha é
	// destacada (em unidades de moeda)
	HighCPLThreshold = 150.0

	// GRPEfficiencyThreshold é o corte de eficiência usado na contagem
	// agregada de campanhas de TV abaixo do planejado (90%)
	GRPEfficiencyThreshold = 0.90

	// GRPGapAlertPoints é o déficit mínimo, em pontos percentuais, para
	// o alerta individual de GRP. Corte distinto do de eficiência acima:
	// os dois coexistem e não devem ser unificados.
	GRPGapAlertPoints = 10.0
)

// EvaluateBudgetAlert avalia o estouro de verba social adicional.
// Só se aplica a canais sociais com verba adicional positiva; dispara
// quando a fração extra/principal excede o limite. Verba principal zero
// nunca dispara (evita divisão por zero).
func EvaluateBudgetAlert(campaign *domain.Campaign) *domain.BudgetAlert {
	if !domain.IsSocialChannel(campaign.Channel) {
		return nil
	}
	if campaign.ExtraSocialBudget == nil || *campaign.ExtraSocialBudget <= 0 {
		return nil
	}
	if campaign.Budget == 0 {
		return nil
	}

	percentage := *campaign.ExtraSocialBudget / campaign.Budget
	if percentage <= BudgetAlertThreshold {
		return nil
	}

	return &domain.BudgetAlert{
		CampaignID:   campaign.ID,
		CampaignName: campaign.Name,
		Percentage:   percentage,
	}
}

// EvaluateGRPAlert avalia a entrega de GRPs de campanhas de TV.
// Dispara quando o déficit em relação ao planejado passa de
// GRPGapAlertPoints pontos percentuais.
func EvaluateGRPAlert(campaign *domain.Campaign) *domain.GRPAlert {
	if campaign.Channel != domain.ChannelTV {
		return nil
	}
	if campaign.ExpectedGrps == nil || campaign.AchievedGrps == nil || *campaign.ExpectedGrps <= 0 {
		return nil
	}
	if *campaign.AchievedGrps >= *campaign.ExpectedGrps {
		return nil
	}

	gap := (*campaign.ExpectedGrps - *campaign.AchievedGrps) / *campaign.ExpectedGrps * 100
	if gap <= GRPGapAlertPoints {
		return nil
	}

	return &domain.GRPAlert{
		CampaignID:            campaign.ID,
		CampaignName:          campaign.Name,
		PerformanceGapPercent: gap,
	}
}

// EvaluateHighCPLAlert informa se o custo por lead passou do limite.
// O valor exatamente no limite não dispara.
func EvaluateHighCPLAlert(campaign *domain.Campaign) bool {
	return campaign.CostPerLead != nil && *campaign.CostPerLead > HighCPLThreshold
}

// GRPEfficiency calcula alcançado/planejado para médias de portfólio.
// ok=false quando a campanha não tem os dois valores ou o planejado é
// zero; nesses casos a campanha fica fora da média, nunca conta como zero.
func GRPEfficiency(campaign *domain.Campaign) (efficiency float64, ok bool) {
	if campaign.ExpectedGrps == nil || campaign.AchievedGrps == nil || *campaign.ExpectedGrps <= 0 {
		return 0, false
	}
	return *campaign.AchievedGrps / *campaign.ExpectedGrps, true
}

// DetectPerformanceAlerts avalia CPL alto e déficit de GRP para cada
// campanha do conjunto. Alertas de verba social não entram aqui: são
// reportados à parte (ver reporting.DashboardAlerts).
func DetectPerformanceAlerts(campaigns []*domain.Campaign) []domain.PerformanceAlert {
	alerts := make([]domain.PerformanceAlert, 0)

	for _, campaign := range campaigns {
		if EvaluateHighCPLAlert(campaign) {
			cpl := *campaign.CostPerLead
			alerts = append(alerts, domain.PerformanceAlert{
				CampaignID:   campaign.ID,
				CampaignName: campaign.Name,
				Type:         domain.AlertTypeHighCPL,
				Severity:     severityFor(cpl, HighCPLThreshold),
				Value:        utils.RoundWithTwoDecimalPlace(cpl),
				Message:      fmt.Sprintf("Custo por lead de %.2f acima do limite de %.0f", cpl, HighCPLThreshold),
			})
		}

		if grpAlert := EvaluateGRPAlert(campaign); grpAlert != nil {
			alerts = append(alerts, domain.PerformanceAlert{
				CampaignID:   campaign.ID,
				CampaignName: campaign.Name,
				Type:         domain.AlertTypeGRPShortfall,
				Severity:     severityFor(grpAlert.PerformanceGapPercent, GRPGapAlertPoints),
				Value:        utils.RoundWithTwoDecimalPlace(grpAlert.PerformanceGapPercent),
				Message:      fmt.Sprintf("Entrega de GRPs %.1f%% abaixo do planejado", grpAlert.PerformanceGapPercent),
			})
		}
	}

	return alerts
}

// severityFor mapeia a razão valor observado / limite em severidade:
// acima de 2x é high, acima de 1.5x é medium, o restante low. Mapeamento
// monotônico aplicado igualmente a todos os tipos de alerta.
func severityFor(value, threshold float64) domain.AlertSeverity {
	ratio := value / threshold
	switch {
	case ratio > 2.0:
		return domain.AlertSeverityHigh
	case ratio > 1.5:
		return domain.AlertSeverityMedium
	default:
		return domain.AlertSeverityLow
	}
}
