package domain

type AlertSeverity string

const (
	AlertSeverityLow    AlertSeverity = "low"
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityHigh   AlertSeverity = "high"
)

type AlertType string

const (
	AlertTypeHighCPL      AlertType = "HIGH_CPL"
	AlertTypeGRPShortfall AlertType = "GRP_SHORTFALL"
)

// BudgetAlert sinaliza verba social adicional acima do limite em relação
// à verba principal; reportado separadamente dos demais alertas
type BudgetAlert struct {
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Percentage   float64 `json:"percentage"`
}

// GRPAlert sinaliza entrega de GRPs abaixo do planejado em campanhas de TV
type GRPAlert struct {
	CampaignID            string  `json:"campaign_id"`
	CampaignName          string  `json:"campaign_name"`
	PerformanceGapPercent float64 `json:"performance_gap_percent"`
}

// PerformanceAlert é a entrada do painel de alertas do dashboard
type PerformanceAlert struct {
	CampaignID   string        `json:"campaign_id"`
	CampaignName string        `json:"campaign_name"`
	Type         AlertType     `json:"type"`
	Severity     AlertSeverity `json:"severity"`
	Value        float64       `json:"value"`
	Message      string        `json:"message"`
}
