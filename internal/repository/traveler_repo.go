package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"travelmatch/internal/domain"
)

// TravelerRepository es la fuente de perfiles del núcleo de compatibilidad.
// El núcleo asume perfiles bien formados; la fuente es responsable de eso.
type TravelerRepository interface {
	Create(ctx context.Context, profile domain.TravelProfile) error
	GetByID(ctx context.Context, id string) (domain.TravelProfile, error)
	List(ctx context.Context) ([]domain.TravelProfile, error)
}

type PgTravelerRepository struct {
	pool *pgxpool.Pool
}

func NewPgTravelerRepository(pool *pgxpool.Pool) *PgTravelerRepository {
	return &PgTravelerRepository{pool: pool}
}

func (r *PgTravelerRepository) Create(ctx context.Context, profile domain.TravelProfile) error {
	const query = `
		INSERT INTO travelers (id, display_name, home_location, travel_style, interests, budget_per_day, trip_start, trip_end, destinations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.DisplayName,
		profile.HomeLocation,
		profile.TravelStyle,
		profile.Interests,
		profile.BudgetPerDay,
		profile.TripStart,
		profile.TripEnd,
		profile.Destinations,
		profile.CreatedAt,
	)
	return err
}

func (r *PgTravelerRepository) GetByID(ctx context.Context, id string) (domain.TravelProfile, error) {
	const query = `
		SELECT id, display_name, home_location, travel_style, interests, budget_per_day, trip_start, trip_end, destinations, created_at
		FROM travelers
		WHERE id = $1
	`
	var profile domain.TravelProfile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.DisplayName,
		&profile.HomeLocation,
		&profile.TravelStyle,
		&profile.Interests,
		&profile.BudgetPerDay,
		&profile.TripStart,
		&profile.TripEnd,
		&profile.Destinations,
		&profile.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.TravelProfile{}, err
	}
	return profile, err
}

func (r *PgTravelerRepository) List(ctx context.Context) ([]domain.TravelProfile, error) {
	const query = `
		SELECT id, display_name, home_location, travel_style, interests, budget_per_day, trip_start, trip_end, destinations, created_at
		FROM travelers
		ORDER BY created_at, id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.TravelProfile
	for rows.Next() {
		var profile domain.TravelProfile
		if err := rows.Scan(
			&profile.ID,
			&profile.DisplayName,
			&profile.HomeLocation,
			&profile.TravelStyle,
			&profile.Interests,
			&profile.BudgetPerDay,
			&profile.TripStart,
			&profile.TripEnd,
			&profile.Destinations,
			&profile.CreatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}
