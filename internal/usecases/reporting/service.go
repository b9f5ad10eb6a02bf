// Package reporting agrega o conjunto filtrado de campanhas nos painéis
// do dashboard: totais de verba e leads, médias de CPL e eficiência de
// GRP e os painéis de alerta
package reporting

import (
	"sort"
	"time"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/infrastructure/repository"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/usecases/alerting"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/usecases/statusing"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/pkg/utils"
)

type ReportingService interface {
	DashboardSummary(filter domain.CampaignFilter) (*domain.DashboardSummary, error)
	DashboardAlerts(filter domain.CampaignFilter) (*domain.DashboardAlerts, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
}

func NewService(campaignRepository repository.CampaignRepository) ReportingService {
	return &Service{
		campaignRepository: campaignRepository,
	}
}

func (s *Service) DashboardSummary(filter domain.CampaignFilter) (*domain.DashboardSummary, error) {
	campaigns, err := s.load(filter)
	if err != nil {
		return nil, err
	}

	summary := &domain.DashboardSummary{
		TotalCampaigns:  len(campaigns),
		CountByStatus:   make(map[domain.CampaignStatus]int),
		BudgetByChannel: make(map[string]float64),
	}

	var cplSum float64
	var cplCount int
	budgetByMonth := make(map[string]*domain.MonthlyBudget)

	for _, campaign := range campaigns {
		summary.CountByStatus[campaign.Status]++
		summary.TotalBudget += campaign.Budget
		summary.BudgetByChannel[campaign.Channel] += campaign.Budget

		if campaign.ExtraSocialBudget != nil {
			summary.TotalExtraSocial += *campaign.ExtraSocialBudget
		}

		if campaign.Leads != nil {
			summary.TotalLeads += *campaign.Leads
		}

		if campaign.CostPerLead != nil {
			cplSum += *campaign.CostPerLead
			cplCount++
		}

		if campaign.StartDate != nil {
			month := campaign.StartDate.Format("01-2006")
			bucket, ok := budgetByMonth[month]
			if !ok {
				bucket = &domain.MonthlyBudget{Month: month}
				budgetByMonth[month] = bucket
			}
			bucket.Budget += campaign.Budget
			bucket.Count++
		}
	}

	if cplCount > 0 {
		summary.AverageCostPerLead = utils.RoundWithTwoDecimalPlace(cplSum / float64(cplCount))
	}

	// Campanhas sem eficiência computável ficam fora da média
	if average, ok := alerting.AverageGRPEfficiency(campaigns); ok {
		rounded := utils.RoundWithTwoDecimalPlace(average)
		summary.AverageGRPEfficiency = &rounded
	}
	summary.UnderperformingGRPTV = alerting.CountUnderperformingGRP(campaigns)

	summary.BudgetByMonth = sortMonthlyBudgets(budgetByMonth)

	return summary, nil
}

// DashboardAlerts avalia o conjunto filtrado: alertas de performance
// (CPL alto e déficit de GRP) em uma lista, alertas de verba social em
// outra — a separação é do contrato do dashboard
func (s *Service) DashboardAlerts(filter domain.CampaignFilter) (*domain.DashboardAlerts, error) {
	campaigns, err := s.load(filter)
	if err != nil {
		return nil, err
	}

	budgetAlerts := make([]domain.BudgetAlert, 0)
	for _, campaign := range campaigns {
		if alert := alerting.EvaluateBudgetAlert(campaign); alert != nil {
			alert.Percentage = utils.RoundWithTwoDecimalPlace(alert.Percentage)
			budgetAlerts = append(budgetAlerts, *alert)
		}
	}

	return &domain.DashboardAlerts{
		Performance: alerting.DetectPerformanceAlerts(campaigns),
		Budget:      budgetAlerts,
	}, nil
}

func (s *Service) load(filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepository.List(filter)
	if err != nil {
		return nil, err
	}

	for _, campaign := range campaigns {
		campaign.Status = statusing.MigrateLegacyStatus(campaign.Status)
	}

	return campaigns, nil
}

func sortMonthlyBudgets(buckets map[string]*domain.MonthlyBudget) []domain.MonthlyBudget {
	result := make([]domain.MonthlyBudget, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}

	sort.Slice(result, func(i, j int) bool {
		left, _ := time.Parse("01-2006", result[i].Month)
		right, _ := time.Parse("01-2006", result[j].Month)
		return left.Before(right)
	})

	return result
}
