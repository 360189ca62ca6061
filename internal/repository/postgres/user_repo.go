package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, username, email, password_hash, google_id, strava_id, created_at, updated_at`

// UserRepo implements repository.UserRepository.
type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	if user.Email == "" || user.Username == "" || user.PasswordHash == "" {
		return 0, errors.New("user email, username and password hash are required")
	}

	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, google_id, strava_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		user.Username, user.Email, user.PasswordHash, user.GoogleID, user.StravaID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrDuplicate
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return user.ID, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepo) GetByExternalID(ctx context.Context, provider domain.IdentityProvider, externalID string) (*domain.User, error) {
	column, err := externalIDColumn(provider)
	if err != nil {
		return nil, err
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = $1`, externalID)
}

func (r *UserRepo) LinkExternalID(ctx context.Context, userID int64, provider domain.IdentityProvider, externalID string) error {
	column, err := externalIDColumn(provider)
	if err != nil {
		return err
	}

	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE users SET `+column+` = $1, updated_at = now() WHERE id = $2`,
		externalID, userID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("link %s id: %w", provider, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := conn(ctx, r.db).QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.GoogleID, &u.StravaID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func externalIDColumn(provider domain.IdentityProvider) (string, error) {
	switch provider {
	case domain.ProviderGoogle:
		return "google_id", nil
	case domain.ProviderStrava:
		return "strava_id", nil
	default:
		return "", fmt.Errorf("unknown identity provider %q", provider)
	}
}
