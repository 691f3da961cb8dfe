package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"engagement-tracker/internal/dto"
	"engagement-tracker/internal/entities"
	apperrors "engagement-tracker/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	websiteTable  = "websites"
	websiteFields = "id, user_id, software, start_date, end_date, state_id, district_id, palika_id, created_at, updated_at"
)

type WebsiteRepositoryInterface interface {
	GetWebsites(ctx context.Context, ownerScope *uint64, includeOwner bool) ([]entities.Website, error)
	FindWebsite(ctx context.Context, id uint64) (*entities.Website, error)
	CreateWebsite(ctx context.Context, ownerID uint64, payload dto.CreateWebsiteDTO) (*entities.Website, error)
	UpdateWebsite(ctx context.Context, id uint64, payload dto.UpdateWebsiteDTO, claimOwnerID *uint64) (*entities.Website, error)
	DeleteWebsite(ctx context.Context, id uint64) error
}

type WebsiteRepository struct {
	storage Querier
}

func NewWebsiteRepository(storage *pgxpool.Pool) WebsiteRepositoryInterface {
	return &WebsiteRepository{storage: storage}
}

func scanWebsite(row pgx.Row) (*entities.Website, error) {
	var w entities.Website
	err := row.Scan(
		&w.ID, &w.UserID, &w.Software, &w.StartDate, &w.EndDate,
		&w.StateID, &w.DistrictID, &w.PalikaID, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *WebsiteRepository) GetWebsites(ctx context.Context, ownerScope *uint64, includeOwner bool) ([]entities.Website, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(
		"w.id", "w.user_id", "w.software", "w.start_date", "w.end_date",
		"w.state_id", "w.district_id", "w.palika_id", "w.created_at", "w.updated_at",
		"COALESCE(u.full_name, '')", "COALESCE(u.email, '')",
	).From(websiteTable + " AS w").
		LeftJoin("users u ON w.user_id = u.id").
		OrderBy("w.id")

	if ownerScope != nil {
		builder = builder.Where(sq.Eq{"w.user_id": *ownerScope})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	websites := make([]entities.Website, 0)
	for rows.Next() {
		var w entities.Website
		var ownerName, ownerEmail string
		err := rows.Scan(
			&w.ID, &w.UserID, &w.Software, &w.StartDate, &w.EndDate,
			&w.StateID, &w.DistrictID, &w.PalikaID, &w.CreatedAt, &w.UpdatedAt,
			&ownerName, &ownerEmail,
		)
		if err != nil {
			return nil, err
		}
		if includeOwner && w.UserID != nil {
			w.Owner = &entities.OwnerInfo{FullName: ownerName, Email: ownerEmail}
		}
		websites = append(websites, w)
	}
	return websites, rows.Err()
}

func (r *WebsiteRepository) FindWebsite(ctx context.Context, id uint64) (*entities.Website, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", websiteFields, websiteTable)
	return scanWebsite(r.storage.QueryRow(ctx, query, id))
}

func (r *WebsiteRepository) CreateWebsite(ctx context.Context, ownerID uint64, payload dto.CreateWebsiteDTO) (*entities.Website, error) {
	startDate, err := time.Parse("2006-01-02", payload.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid startDate")
	}
	endDate, err := time.Parse("2006-01-02", payload.EndDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid endDate")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, software, start_date, end_date, state_id, district_id, palika_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING %s`, websiteTable, websiteFields)

	row := r.storage.QueryRow(ctx, query,
		ownerID, payload.Software, startDate, endDate,
		payload.StateID, payload.DistrictID, payload.PalikaID,
	)
	return scanWebsite(row)
}

// UpdateWebsite applies a merge patch in a single UPDATE statement: only
// the provided fields appear in the SET clause, so concurrent patches to
// different fields cannot lose each other's writes. When claimOwnerID is
// set the ownerless record is claimed for that user in the same statement.
func (r *WebsiteRepository) UpdateWebsite(ctx context.Context, id uint64, payload dto.UpdateWebsiteDTO, claimOwnerID *uint64) (*entities.Website, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if payload.Software != nil {
		addSet("software", *payload.Software)
	}
	if payload.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *payload.StartDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid startDate")
		}
		addSet("start_date", startDate)
	}
	if payload.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *payload.EndDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid endDate")
		}
		addSet("end_date", endDate)
	}
	if payload.StateID != nil {
		addSet("state_id", *payload.StateID)
	}
	if payload.DistrictID != nil {
		addSet("district_id", *payload.DistrictID)
	}
	if payload.PalikaID != nil {
		addSet("palika_id", *payload.PalikaID)
	}
	if claimOwnerID != nil {
		addSet("user_id", *claimOwnerID)
	}

	if len(setClauses) == 0 {
		return r.FindWebsite(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		websiteTable, strings.Join(setClauses, ", "), argID, websiteFields)
	args = append(args, id)

	return scanWebsite(r.storage.QueryRow(ctx, query, args...))
}

func (r *WebsiteRepository) DeleteWebsite(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", websiteTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
