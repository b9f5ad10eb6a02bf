package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/infrastructure/database/postgres"
	"github.com/PietrangeloArdis/ArredissimAIM-sub000/internal/domain"
)

// ReferenceRepository expõe os dados de apoio consumidos como leitura
// pelas campanhas: marcas, gestores, regiões, canais e emissoras
type ReferenceRepository interface {
	ListBrands() ([]*domain.Brand, error)
	ListManagers() ([]*domain.Manager, error)
	ListRegions() ([]*domain.Region, error)
	ListChannels() ([]*domain.ChannelConfig, error)
	ListBroadcasters(channel string) ([]*domain.Broadcaster, error)
}

type referenceRepository struct {
	conn *postgres.Connection
}

func NewReferenceRepository(conn *postgres.Connection) ReferenceRepository {
	return &referenceRepository{
		conn: conn,
	}
}

func (r *referenceRepository) ListBrands() ([]*domain.Brand, error) {
	query, args, err := squirrel.
		Select("id", "name", "active").
		From("brands").
		OrderBy("name ASC").
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

	brands := make([]*domain.Brand, 0)
	for rows.Next() {
		brand := &domain.Brand{}
		if err := rows.Scan(&brand.ID, &brand.Name, &brand.Active); err != nil {
			return nil, fmt.Errorf("erro ao escanear marcas: %w", err)
		}
		brands = append(brands, brand)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return brands, nil
}

func (r *referenceRepository) ListManagers() ([]*domain.Manager, error) {
	query, args, err := squirrel.
		Select("id", "name", "email", "active").
		From("managers").
		OrderBy("name ASC").
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

	managers := make([]*domain.Manager, 0)
	for rows.Next() {
		manager := &domain.Manager{}
		if err := rows.Scan(&manager.ID, &manager.Name, &manager.Email, &manager.Active); err != nil {
			return nil, fmt.Errorf("erro ao escanear gestores: %w", err)
		}
		managers = append(managers, manager)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return managers, nil
}

func (r *referenceRepository) ListRegions() ([]*domain.Region, error) {
	query, args, err := squirrel.
		Select("id", "name", "code").
		From("regions").
		OrderBy("name ASC").
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

	regions := make([]*domain.Region, 0)
	for rows.Next() {
		region := &domain.Region{}
		if err := rows.Scan(&region.ID, &region.Name, &region.Code); err != nil {
			return nil, fmt.Errorf("erro ao escanear regiões: %w", err)
		}
		regions = append(regions, region)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return regions, nil
}

func (r *referenceRepository) ListChannels() ([]*domain.ChannelConfig, error) {
	query, args, err := squirrel.
		Select("id", "name", "social", "tracks_grps", "tracks_spots", "has_broadcasters").
		From("channels").
		OrderBy("name ASC").
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

	channels := make([]*domain.ChannelConfig, 0)
	for rows.Next() {
		channel := &domain.ChannelConfig{}
		if err := rows.Scan(
			&channel.ID,
			&channel.Name,
			&channel.Social,
			&channel.TracksGrps,
			&channel.TracksSpots,
			&channel.HasBroadcasters,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear canais: %w", err)
		}
		channels = append(channels, channel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}

func (r *referenceRepository) ListBroadcasters(channel string) ([]*domain.Broadcaster, error) {
	builder := squirrel.
		Select("id", "name", "channel", "active").
		From("broadcasters").
		OrderBy("name ASC")

	if channel != "" {
		builder = builder.Where(squirrel.Eq{"channel": channel})
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

	broadcasters := make([]*domain.Broadcaster, 0)
	for rows.Next() {
		broadcaster := &domain.Broadcaster{}
		if err := rows.Scan(
			&broadcaster.ID,
			&broadcaster.Name,
			&broadcaster.Channel,
			&broadcaster.Active,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear emissoras: %w", err)
		}
		broadcasters = append(broadcasters, broadcaster)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return broadcasters, nil
}
