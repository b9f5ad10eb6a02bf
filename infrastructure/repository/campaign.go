package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/infrastructure/database/postgres"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
	"github.com/lib/pq"
)

const (
	campaignsTable = "campaigns c"

	campaignColumns = `c.id, c.name, c.brand_id, c.manager_id, c.region_id, c.channel,
		c.broadcaster_id, c.status, c.start_date, c.end_date, c.budget,
		c.extra_social_budget, c.expected_grps, c.achieved_grps, c.spots_purchased,
		c.impressions, c.leads, c.cost_per_lead, c.notes, c.created_at, c.updated_at`
)

type CampaignRepository interface {
	GetByID(id string) (*domain.Campaign, error)
	List(filter domain.CampaignFilter) ([]*domain.Campaign, error)
	Create(campaign *domain.Campaign) error
	Update(campaign *domain.Campaign) error
	UpdateStatus(id string, status domain.CampaignStatus) error
	Delete(id string) error
	ListRefreshable(limit, offset int) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByID(id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	campaign, err := r.scanCampaign(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) List(filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	builder := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		OrderBy("c.start_date ASC NULLS LAST", "c.name ASC")

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		builder = builder.Where(squirrel.Eq{"c.status": statuses})
	}

	if filter.BrandID != nil {
		builder = builder.Where(squirrel.Eq{"c.brand_id": *filter.BrandID})
	}

	if filter.ManagerID != nil {
		builder = builder.Where(squirrel.Eq{"c.manager_id": *filter.ManagerID})
	}

	if filter.RegionID != nil {
		builder = builder.Where(squirrel.Eq{"c.region_id": *filter.RegionID})
	}

	if filter.Channel != nil {
		builder = builder.Where(squirrel.Eq{"c.channel": *filter.Channel})
	}

	// Filtro de período: campanhas cujo intervalo intersecta [from, to]
	if filter.PeriodFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"c.end_date": filter.PeriodFrom.Format("2006-01-02")})
	}

	if filter.PeriodTo != nil {
		builder = builder.Where(squirrel.LtOrEq{"c.start_date": filter.PeriodTo.Format("2006-01-02")})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.scanCampaignRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanhas: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// ListRefreshable retorna um lote de campanhas candidatas à varredura
// diária de status. CANCELLED fica de fora: nunca é reatribuído.
func (r *campaignRepository) ListRefreshable(limit, offset int) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.NotEq{"c.status": string(domain.CampaignStatusCancelled)}).
		OrderBy("c.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.scanCampaignRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanhas: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) Create(campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Insert("campaigns").
		Columns(
			"id", "name", "brand_id", "manager_id", "region_id", "channel",
			"broadcaster_id", "status", "start_date", "end_date", "budget",
			"extra_social_budget", "expected_grps", "achieved_grps",
			"spots_purchased", "impressions", "leads", "cost_per_lead", "notes",
		).
		Values(
			campaign.ID, campaign.Name, campaign.BrandID, campaign.ManagerID,
			campaign.RegionID, campaign.Channel, campaign.BroadcasterID,
			string(campaign.Status), formatDate(campaign.StartDate), formatDate(campaign.EndDate),
			campaign.Budget, campaign.ExtraSocialBudget, campaign.ExpectedGrps,
			campaign.AchievedGrps, campaign.SpotsPurchased, campaign.Impressions,
			campaign.Leads, campaign.CostPerLead, campaign.Notes,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *campaignRepository) Update(campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("name", campaign.Name).
		Set("brand_id", campaign.BrandID).
		Set("manager_id", campaign.ManagerID).
		Set("region_id", campaign.RegionID).
		Set("channel", campaign.Channel).
		Set("broadcaster_id", campaign.BroadcasterID).
		Set("status", string(campaign.Status)).
		Set("start_date", formatDate(campaign.StartDate)).
		Set("end_date", formatDate(campaign.EndDate)).
		Set("budget", campaign.Budget).
		Set("extra_social_budget", campaign.ExtraSocialBudget).
		Set("expected_grps", campaign.ExpectedGrps).
		Set("achieved_grps", campaign.AchievedGrps).
		Set("spots_purchased", campaign.SpotsPurchased).
		Set("impressions", campaign.Impressions).
		Set("leads", campaign.Leads).
		Set("cost_per_lead", campaign.CostPerLead).
		Set("notes", campaign.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaign.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *campaignRepository) UpdateStatus(id string, status domain.CampaignStatus) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *campaignRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("campaigns").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *campaignRepository) scanCampaign(row *sql.Row) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.BrandID,
		&campaign.ManagerID,
		&campaign.RegionID,
		&campaign.Channel,
		&campaign.BroadcasterID,
		&campaign.Status,
		&campaign.StartDate,
		&campaign.EndDate,
		&campaign.Budget,
		&campaign.ExtraSocialBudget,
		&campaign.ExpectedGrps,
		&campaign.AchievedGrps,
		&campaign.SpotsPurchased,
		&campaign.Impressions,
		&campaign.Leads,
		&campaign.CostPerLead,
		&campaign.Notes,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) scanCampaignRows(rows *sql.Rows) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	err := rows.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.BrandID,
		&campaign.ManagerID,
		&campaign.RegionID,
		&campaign.Channel,
		&campaign.BroadcasterID,
		&campaign.Status,
		&campaign.StartDate,
		&campaign.EndDate,
		&campaign.Budget,
		&campaign.ExtraSocialBudget,
		&campaign.ExpectedGrps,
		&campaign.AchievedGrps,
		&campaign.SpotsPurchased,
		&campaign.Impressions,
		&campaign.Leads,
		&campaign.CostPerLead,
		&campaign.Notes,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return campaign, nil
}

// formatDate grava colunas date no formato "2006-01-02", preservando nulos
func formatDate(date *time.Time) interface{} {
	if date == nil {
		return nil
	}
	return date.Format("2006-01-02")
}
