package repositories

import (
	"context"
	"errors"

	"engagement-tracker/internal/entities"
	apperrors "engagement-tracker/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GeoRepositoryInterface serves the static state/district/palika hierarchy.
// Bulk inserts are intentionally lenient: rows are not checked against the
// parent table, so partial loads and out-of-order loads keep working.
type GeoRepositoryInterface interface {
	BulkInsertStates(ctx context.Context, records []entities.State) ([]entities.State, error)
	BulkInsertDistricts(ctx context.Context, records []entities.District) ([]entities.District, error)
	BulkInsertPalikas(ctx context.Context, records []entities.Palika) ([]entities.Palika, error)
	GetStates(ctx context.Context) ([]entities.State, error)
	GetDistricts(ctx context.Context, stateID *int64) ([]entities.District, error)
	GetPalikas(ctx context.Context, districtID *int64) ([]entities.Palika, error)
}

type GeoRepository struct {
	storage Querier
}

func NewGeoRepository(storage *pgxpool.Pool) GeoRepositoryInterface {
	return &GeoRepository{storage: storage}
}

func mapInsertError(err error, kind string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperrors.NewBadRequestError("duplicate %s id", kind)
	}
	return err
}

func (r *GeoRepository) BulkInsertStates(ctx context.Context, records []entities.State) ([]entities.State, error) {
	const query = "INSERT INTO states (id, name, name_nep, code) VALUES ($1, $2, $3, $4)"
	for _, rec := range records {
		if _, err := r.storage.Exec(ctx, query, rec.ID, rec.Name, rec.NameNep, rec.Code); err != nil {
			return nil, mapInsertError(err, "state")
		}
	}
	return records, nil
}

func (r *GeoRepository) BulkInsertDistricts(ctx context.Context, records []entities.District) ([]entities.District, error) {
	const query = "INSERT INTO districts (id, state_id, name, name_nep, code) VALUES ($1, $2, $3, $4, $5)"
	for _, rec := range records {
		if _, err := r.storage.Exec(ctx, query, rec.ID, rec.StateID, rec.Name, rec.NameNep, rec.Code); err != nil {
			return nil, mapInsertError(err, "district")
		}
	}
	return records, nil
}

func (r *GeoRepository) BulkInsertPalikas(ctx context.Context, records []entities.Palika) ([]entities.Palika, error) {
	const query = "INSERT INTO palikas (id, district_id, name, name_nep, code) VALUES ($1, $2, $3, $4, $5)"
	for _, rec := range records {
		if _, err := r.storage.Exec(ctx, query, rec.ID, rec.DistrictID, rec.Name, rec.NameNep, rec.Code); err != nil {
			return nil, mapInsertError(err, "palika")
		}
	}
	return records, nil
}

func (r *GeoRepository) GetStates(ctx context.Context) ([]entities.State, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, name, name_nep, code FROM states ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := make([]entities.State, 0)
	for rows.Next() {
		var s entities.State
		if err := rows.Scan(&s.ID, &s.Name, &s.NameNep, &s.Code); err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, rows.Err()
}

func (r *GeoRepository) GetDistricts(ctx context.Context, stateID *int64) ([]entities.District, error) {
	query := "SELECT id, state_id, name, name_nep, code FROM districts ORDER BY id"
	args := []any{}
	if stateID != nil {
		query = "SELECT id, state_id, name, name_nep, code FROM districts WHERE state_id = $1 ORDER BY id"
		args = append(args, *stateID)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	districts := make([]entities.District, 0)
	for rows.Next() {
		var d entities.District
		if err := rows.Scan(&d.ID, &d.StateID, &d.Name, &d.NameNep, &d.Code); err != nil {
			return nil, err
		}
		districts = append(districts, d)
	}
	return districts, rows.Err()
}

func (r *GeoRepository) GetPalikas(ctx context.Context, districtID *int64) ([]entities.Palika, error) {
	query := "SELECT id, district_id, name, name_nep, code FROM palikas ORDER BY id"
	args := []any{}
	if districtID != nil {
		query = "SELECT id, district_id, name, name_nep, code FROM palikas WHERE district_id = $1 ORDER BY id"
		args = append(args, *districtID)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	palikas := make([]entities.Palika, 0)
	for rows.Next() {
		var p entities.Palika
		if err := rows.Scan(&p.ID, &p.DistrictID, &p.Name, &p.NameNep, &p.Code); err != nil {
			return nil, err
		}
		palikas = append(palikas, p)
	}
	return palikas, rows.Err()
}
