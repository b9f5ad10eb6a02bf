// Package statusing deriva o status de ciclo de vida de uma campanha a
// partir do período de veiculação. Todas as funções são puras: o instante
// de referência (now) é sempre recebido como parâmetro, nunca lido do
// relógio, para que o resultado seja determinístico e testável.
package statusing

import (
	"time"

	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
)

// ScheduledDatesNotice é o aviso emitido quando uma campanha SCHEDULED
// perde a elegibilidade por datas ausentes ou invertidas
const ScheduledDatesNotice = "Status alterado para Planejada: datas válidas são obrigatórias para o status Agendada"

// Resolution é o resultado da política composta de status.
// Changed indica se o chamador precisa persistir um novo valor;
// Notice, quando preenchido, é um aviso informativo para o usuário.
type Resolution struct {
	Status  domain.CampaignStatus
	Changed bool
	Notice  string
}

var legacyStatusMap = map[domain.CampaignStatus]domain.CampaignStatus{
	domain.LegacyStatusPending: domain.CampaignStatusPlanned,
	domain.LegacyStatusLoaded:  domain.CampaignStatusScheduled,
	domain.LegacyStatusOK:      domain.CampaignStatusActive,
}

// MigrateLegacyStatus converte códigos do esquema antigo para o atual.
// Valores já canônicos e valores desconhecidos passam inalterados; a
// validação de escrita impede que valores novos fora do enum entrem no
// banco, então o pass-through só alcança dados legados.
func MigrateLegacyStatus(raw domain.CampaignStatus) domain.CampaignStatus {
	if migrated, ok := legacyStatusMap[raw]; ok {
		return migrated
	}
	return raw
}

// ResolveAutoStatus deriva o status pelo período, comparando apenas datas:
// now e startDate são normalizados para o início do dia e endDate para o
// fim do dia, tornando a data final inclusiva. Nunca retorna SCHEDULED
// nem CANCELLED, que são estados exclusivamente manuais.
func ResolveAutoStatus(startDate, endDate, now time.Time) domain.CampaignStatus {
	today := startOfDay(now)
	start := startOfDay(startDate)
	end := endOfDay(endDate)

	switch {
	case today.Before(start):
		return domain.CampaignStatusPlanned
	case today.After(end):
		return domain.CampaignStatusCompleted
	default:
		return domain.CampaignStatusActive
	}
}

// ResolveDisplayStatus aplica a política composta usada por formulários e
// pela varredura diária, em ordem de prioridade:
//  1. CANCELLED nunca é reatribuído automaticamente
//  2. SCHEDULED é mantido enquanto as datas forem válidas; datas ausentes
//     ou invertidas degradam para PLANNED com aviso
//  3. caso contrário vale o status derivado do período, reportado como
//     mudança apenas quando difere do atual (evita escritas redundantes)
//
// Datas inválidas nunca geram erro: o resultado degrada para PLANNED.
func ResolveDisplayStatus(campaign *domain.Campaign, now time.Time) Resolution {
	current := MigrateLegacyStatus(campaign.Status)
	// migração de código legado já conta como mudança a persistir
	migrated := current != campaign.Status

	if current == domain.CampaignStatusCancelled {
		return Resolution{Status: domain.CampaignStatusCancelled, Changed: migrated}
	}

	if current == domain.CampaignStatusScheduled {
		if !IsScheduledEligible(campaign.StartDate, campaign.EndDate) {
			return Resolution{
				Status:  domain.CampaignStatusPlanned,
				Changed: true,
				Notice:  ScheduledDatesNotice,
			}
		}
		return Resolution{Status: domain.CampaignStatusScheduled, Changed: migrated}
	}

	if campaign.StartDate == nil || campaign.EndDate == nil ||
		campaign.StartDate.After(*campaign.EndDate) {
		return Resolution{
			Status:  domain.CampaignStatusPlanned,
			Changed: migrated || current != domain.CampaignStatusPlanned,
		}
	}

	auto := ResolveAutoStatus(*campaign.StartDate, *campaign.EndDate, now)
	if auto == current {
		return Resolution{Status: current, Changed: migrated}
	}

	return Resolution{Status: auto, Changed: true}
}

// IsScheduledEligible informa se a campanha pode receber o status manual
// SCHEDULED: ambas as datas presentes e período não invertido
func IsScheduledEligible(startDate, endDate *time.Time) bool {
	if startDate == nil || endDate == nil {
		return false
	}
	return !startDate.After(*endDate)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999000000, t.Location())
}
