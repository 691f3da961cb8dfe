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
	inquiryTable  = "inquiries"
	inquiryFields = "id, user_id, inquirer_name, contact_person, contact_person_email, phone_number, address, date, software, status, activities, comments"

	actionTable  = "inquiry_actions"
	actionFields = "id, inquiry_id, type, note, created_at"
)

type InquiryRepositoryInterface interface {
	GetInquiries(ctx context.Context, ownerScope *uint64, status string, includeOwner bool) ([]entities.Inquiry, error)
	FindInquiry(ctx context.Context, id uint64) (*entities.Inquiry, error)
	CreateInquiry(ctx context.Context, ownerID uint64, payload dto.CreateInquiryDTO) (*entities.Inquiry, error)
	UpdateInquiry(ctx context.Context, id uint64, payload dto.UpdateInquiryDTO, claimOwnerID *uint64) (*entities.Inquiry, error)
	DeleteInquiry(ctx context.Context, id uint64) error
	DistinctSoftware(ctx context.Context) ([]string, error)
	AppendAction(ctx context.Context, inquiryID uint64, actionType, note string) (*entities.InquiryAction, error)
	GetActions(ctx context.Context, inquiryID uint64) ([]entities.InquiryAction, error)
}

type InquiryRepository struct {
	storage Querier
}

func NewInquiryRepository(storage *pgxpool.Pool) InquiryRepositoryInterface {
	return &InquiryRepository{storage: storage}
}

func scanInquiry(row pgx.Row) (*entities.Inquiry, error) {
	var q entities.Inquiry
	err := row.Scan(
		&q.ID, &q.UserID, &q.InquirerName, &q.ContactPerson, &q.ContactPersonEmail,
		&q.PhoneNumber, &q.Address, &q.Date, &q.Software, &q.Status,
		&q.Activities, &q.Comments,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *InquiryRepository) GetInquiries(ctx context.Context, ownerScope *uint64, status string, includeOwner bool) ([]entities.Inquiry, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(
		"i.id", "i.user_id", "i.inquirer_name", "i.contact_person", "i.contact_person_email",
		"i.phone_number", "i.address", "i.date", "i.software", "i.status",
		"i.activities", "i.comments",
		"COALESCE(u.full_name, '')", "COALESCE(u.email, '')",
	).From(inquiryTable + " AS i").
		LeftJoin("users u ON i.user_id = u.id").
		OrderBy("i.id")

	if ownerScope != nil {
		builder = builder.Where(sq.Eq{"i.user_id": *ownerScope})
	}
	if status != "" {
		builder = builder.Where(sq.Eq{"i.status": status})
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

	inquiries := make([]entities.Inquiry, 0)
	for rows.Next() {
		var q entities.Inquiry
		var ownerName, ownerEmail string
		err := rows.Scan(
			&q.ID, &q.UserID, &q.InquirerName, &q.ContactPerson, &q.ContactPersonEmail,
			&q.PhoneNumber, &q.Address, &q.Date, &q.Software, &q.Status,
			&q.Activities, &q.Comments,
			&ownerName, &ownerEmail,
		)
		if err != nil {
			return nil, err
		}
		if includeOwner && q.UserID != nil {
			q.Owner = &entities.OwnerInfo{FullName: ownerName, Email: ownerEmail}
		}
		inquiries = append(inquiries, q)
	}
	return inquiries, rows.Err()
}

func (r *InquiryRepository) FindInquiry(ctx context.Context, id uint64) (*entities.Inquiry, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", inquiryFields, inquiryTable)
	return scanInquiry(r.storage.QueryRow(ctx, query, id))
}

func (r *InquiryRepository) CreateInquiry(ctx context.Context, ownerID uint64, payload dto.CreateInquiryDTO) (*entities.Inquiry, error) {
	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, inquirer_name, contact_person, contact_person_email, phone_number, address, date, software, status, activities, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING %s`, inquiryTable, inquiryFields)

	row := r.storage.QueryRow(ctx, query,
		ownerID, payload.InquirerName, payload.ContactPerson, payload.ContactPersonEmail,
		payload.PhoneNumber, payload.Address, date, payload.Software, payload.Status,
		payload.Activities, payload.Comments,
	)
	return scanInquiry(row)
}

// UpdateInquiry has the same single-statement merge-patch shape as the
// website repository; see UpdateWebsite.
func (r *InquiryRepository) UpdateInquiry(ctx context.Context, id uint64, payload dto.UpdateInquiryDTO, claimOwnerID *uint64) (*entities.Inquiry, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if payload.InquirerName != nil {
		addSet("inquirer_name", *payload.InquirerName)
	}
	if payload.ContactPerson != nil {
		addSet("contact_person", *payload.ContactPerson)
	}
	if payload.ContactPersonEmail != nil {
		addSet("contact_person_email", *payload.ContactPersonEmail)
	}
	if payload.PhoneNumber != nil {
		addSet("phone_number", *payload.PhoneNumber)
	}
	if payload.Address != nil {
		addSet("address", *payload.Address)
	}
	if payload.Date != nil {
		date, err := time.Parse("2006-01-02", *payload.Date)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid date")
		}
		addSet("date", date)
	}
	if payload.Software != nil {
		addSet("software", *payload.Software)
	}
	if payload.Status != nil {
		addSet("status", *payload.Status)
	}
	if payload.Activities != nil {
		addSet("activities", *payload.Activities)
	}
	if payload.Comments != nil {
		addSet("comments", *payload.Comments)
	}
	if claimOwnerID != nil {
		addSet("user_id", *claimOwnerID)
	}

	if len(setClauses) == 0 {
		return r.FindInquiry(ctx, id)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		inquiryTable, strings.Join(setClauses, ", "), argID, inquiryFields)
	args = append(args, id)

	return scanInquiry(r.storage.QueryRow(ctx, query, args...))
}

func (r *InquiryRepository) DeleteInquiry(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", inquiryTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DistinctSoftware backs the autocomplete; software names are shared
// across all users on purpose.
func (r *InquiryRepository) DistinctSoftware(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT DISTINCT software FROM %s ORDER BY software", inquiryTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func scanAction(row pgx.Row) (*entities.InquiryAction, error) {
	var a entities.InquiryAction
	err := row.Scan(&a.ID, &a.InquiryID, &a.Type, &a.Note, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// AppendAction is a plain INSERT: the log is append-only and the timestamp
// is assigned by the database, so concurrent appends cannot drop entries.
func (r *InquiryRepository) AppendAction(ctx context.Context, inquiryID uint64, actionType, note string) (*entities.InquiryAction, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (inquiry_id, type, note) VALUES ($1, $2, $3) RETURNING %s",
		actionTable, actionFields,
	)
	return scanAction(r.storage.QueryRow(ctx, query, inquiryID, actionType, note))
}

func (r *InquiryRepository) GetActions(ctx context.Context, inquiryID uint64) ([]entities.InquiryAction, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE inquiry_id = $1 ORDER BY id", actionFields, actionTable)
	rows, err := r.storage.Query(ctx, query, inquiryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actions := make([]entities.InquiryAction, 0)
	for rows.Next() {
		action, err := scanAction(rows)
		if err != nil {
			return nil, err
		}
		actions = append(actions, *action)
	}
	return actions, rows.Err()
}
