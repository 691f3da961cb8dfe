package repositories

import (
	"context"
	"errors"
	"fmt"

	"engagement-tracker/internal/authz"
	"engagement-tracker/internal/entities"
	apperrors "engagement-tracker/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	userTable  = "users"
	userFields = "id, email, password, full_name, role, created_at"
)

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, email, passwordHash, fullName string) (*entities.User, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	GetUsers(ctx context.Context) ([]entities.User, error)
	PromoteToAdmin(ctx context.Context, id uint64) (*entities.User, error)
}

type UserRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.FullName, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, email, passwordHash, fullName string) (*entities.User, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (email, password, full_name, role) VALUES ($1, $2, $3, $4) RETURNING %s",
		userTable, userFields,
	)
	row := r.storage.QueryRow(ctx, query, email, passwordHash, fullName, authz.RoleUser)
	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE email = $1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", userFields, userTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// PromoteToAdmin is one-way: there is no demotion path.
func (r *UserRepository) PromoteToAdmin(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf(
		"UPDATE %s SET role = $1 WHERE id = $2 RETURNING %s",
		userTable, userFields,
	)
	return scanUser(r.storage.QueryRow(ctx, query, authz.RoleAdmin, id))
}
