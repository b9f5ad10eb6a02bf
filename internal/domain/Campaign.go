package domain

import (
	"time"
)

type CampaignStatus string

const (
	CampaignStatusPlanned   CampaignStatus = "PLANNED"
	CampaignStatusScheduled CampaignStatus = "SCHEDULED"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
	CampaignStatusCancelled CampaignStatus = "CANCELLED"
)

// Códigos de status do esquema antigo, aceitos apenas na leitura
// e convertidos antes de qualquer uso (ver usecases/statusing)
const (
	LegacyStatusPending CampaignStatus = "PENDING"
	LegacyStatusLoaded  CampaignStatus = "LOADED"
	LegacyStatusOK      CampaignStatus = "OK"
)

// IsCanonical informa se o status pertence ao esquema atual
func (s CampaignStatus) IsCanonical() bool {
	switch s {
	case CampaignStatusPlanned, CampaignStatusScheduled, CampaignStatusActive,
		CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

const (
	ChannelMeta      = "Meta"
	ChannelGoogle    = "Google"
	ChannelTikTok    = "TikTok"
	ChannelPinterest = "Pinterest"
	ChannelTV        = "TV"
	ChannelRadio     = "Radio"
)

// IsSocialChannel informa se o canal aceita verba social adicional
func IsSocialChannel(channel string) bool {
	switch channel {
	case ChannelMeta, ChannelTikTok, ChannelPinterest:
		return true
	}
	return false
}

type Campaign struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	BrandID           string         `json:"brand_id"`
	ManagerID         string         `json:"manager_id"`
	RegionID          string         `json:"region_id"`
	Channel           string         `json:"channel"`
	BroadcasterID     *string        `json:"broadcaster_id,omitempty"`
	Status            CampaignStatus `json:"status"`
	StartDate         *time.Time     `json:"start_date"`
	EndDate           *time.Time     `json:"end_date"`
	Budget            float64        `json:"budget"`
	ExtraSocialBudget *float64       `json:"extra_social_budget,omitempty"`
	ExpectedGrps      *float64       `json:"expected_grps,omitempty"`
	AchievedGrps      *float64       `json:"achieved_grps,omitempty"`
	SpotsPurchased    *int           `json:"spots_purchased,omitempty"`
	Impressions       *int64         `json:"impressions,omitempty"`
	Leads             *int           `json:"leads,omitempty"`
	CostPerLead       *float64       `json:"cost_per_lead,omitempty"`
	Notes             *string        `json:"notes,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type CreateCampaignRequest struct {
	Name              string         `json:"name"`
	BrandID           string         `json:"brand_id"`
	ManagerID         string         `json:"manager_id"`
	RegionID          string         `json:"region_id"`
	Channel           string         `json:"channel"`
	BroadcasterID     *string        `json:"broadcaster_id,omitempty"`
	Status            CampaignStatus `json:"status,omitempty"`
	StartDate         *string        `json:"start_date,omitempty"`
	EndDate           *string        `json:"end_date,omitempty"`
	Budget            float64        `json:"budget"`
	ExtraSocialBudget *float64       `json:"extra_social_budget,omitempty"`
	ExpectedGrps      *float64       `json:"expected_grps,omitempty"`
	SpotsPurchased    *int           `json:"spots_purchased,omitempty"`
	Notes             *string        `json:"notes,omitempty"`
}

type UpdateCampaignRequest struct {
	ID                string          `json:"id"`
	Name              *string         `json:"name,omitempty"`
	BrandID           *string         `json:"brand_id,omitempty"`
	ManagerID         *string         `json:"manager_id,omitempty"`
	RegionID          *string         `json:"region_id,omitempty"`
	Channel           *string         `json:"channel,omitempty"`
	BroadcasterID     *string         `json:"broadcaster_id,omitempty"`
	Status            *CampaignStatus `json:"status,omitempty"`
	StartDate         *string         `json:"start_date,omitempty"`
	EndDate           *string         `json:"end_date,omitempty"`
	Budget            *float64        `json:"budget,omitempty"`
	ExtraSocialBudget *float64        `json:"extra_social_budget,omitempty"`
	ExpectedGrps      *float64        `json:"expected_grps,omitempty"`
	AchievedGrps      *float64        `json:"achieved_grps,omitempty"`
	SpotsPurchased    *int            `json:"spots_purchased,omitempty"`
	Impressions       *int64          `json:"impressions,omitempty"`
	Leads             *int            `json:"leads,omitempty"`
	CostPerLead       *float64        `json:"cost_per_lead,omitempty"`
	Notes             *string         `json:"notes,omitempty"`
}

// CampaignFilter restringe a listagem de campanhas; campos nulos não filtram
type CampaignFilter struct {
	Statuses   []CampaignStatus
	BrandID    *string
	ManagerID  *string
	RegionID   *string
	Channel    *string
	PeriodFrom *time.Time
	PeriodTo   *time.Time
}

type DuplicateCampaignRequest struct {
	Copies     int     `json:"copies"`
	NameSuffix *string `json:"name_suffix,omitempty"`
}

type DuplicateCampaignResponse struct {
	Quantity  int      `json:"quantity"`
	Campaigns []string `json:"campaigns"`
	Message   string   `json:"message"`
}

// StatusOption descreve um status selecionável no formulário de campanha
type StatusOption struct {
	Status    CampaignStatus `json:"status"`
	Available bool           `json:"available"`
	Reason    string         `json:"reason,omitempty"`
}
