package domain

// MonthlyBudget agrega verba por mês de início ("01-2006") para o painel
// de linha do tempo
type MonthlyBudget struct {
	Month  string  `json:"month"`
	Budget float64 `json:"budget"`
	Count  int     `json:"count"`
}

type DashboardSummary struct {
	TotalCampaigns        int                    `json:"total_campaigns"`
	CountByStatus         map[CampaignStatus]int `json:"count_by_status"`
	TotalBudget           float64                `json:"total_budget"`
	TotalExtraSocial      float64                `json:"total_extra_social_budget"`
	TotalLeads            int                    `json:"total_leads"`
	AverageCostPerLead    float64                `json:"average_cost_per_lead"`
	AverageGRPEfficiency  *float64               `json:"average_grp_efficiency,omitempty"`
	UnderperformingGRPTV  int                    `json:"underperforming_grp_tv"`
	BudgetByMonth         []MonthlyBudget        `json:"budget_by_month"`
	BudgetByChannel       map[string]float64     `json:"budget_by_channel"`
}

// DashboardAlerts é a resposta do painel de alertas; alertas de verba
// social são reportados à parte dos alertas de performance
type DashboardAlerts struct {
	Performance []PerformanceAlert `json:"performance"`
	Budget      []BudgetAlert      `json:"budget"`
}
