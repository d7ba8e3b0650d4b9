package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store: one row per provisioned employee,
// holding the registered email, password hash, and the single live session
// token with its expiry.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `employee_number, COALESCE(email, ''), COALESCE(password, ''), token, token_expire`

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(
		&user.EmployeeNumber,
		&user.Email,
		&user.PasswordHash,
		&user.SessionToken,
		&user.TokenExpiry,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users WHERE LOWER(email) = LOWER($1)
	`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByEmployeeNumber(ctx context.Context, employeeNumber string) (models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users WHERE employee_number = $1
	`
	return scanUser(r.pool.QueryRow(ctx, query, employeeNumber))
}

func (r *UserRepository) FindByToken(ctx context.Context, token string) (models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users WHERE token = $1
	`
	return scanUser(r.pool.QueryRow(ctx, query, token))
}

// SetCredentials writes email and password hash onto a provisioned record,
// completing self-registration.
func (r *UserRepository) SetCredentials(ctx context.Context, employeeNumber, email, passwordHash string) error {
	const query = `
		UPDATE users SET email = $2, password = $3 WHERE employee_number = $1
	`
	cmd, err := r.pool.Exec(ctx, query, employeeNumber, email, passwordHash)
	if err != nil {
		return classifyWrite("set credentials", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetSessionToken persists a freshly issued token and its expiry, overwriting
// any prior token. At most one live session per user.
func (r *UserRepository) SetSessionToken(ctx context.Context, email, token string, expiry time.Time) error {
	const query = `
		UPDATE users SET token = $2, token_expire = $3 WHERE LOWER(email) = LOWER($1)
	`
	cmd, err := r.pool.Exec(ctx, query, email, token, expiry)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ClearSessionToken nulls out a token, revoking it server-side. Clearing a
// token that no longer exists is not an error.
func (r *UserRepository) ClearSessionToken(ctx context.Context, token string) error {
	const query = `
		UPDATE users SET token = NULL, token_expire = NULL WHERE token = $1
	`
	_, err := r.pool.Exec(ctx, query, token)
	return err
}

// ClearExpiredTokens nulls out tokens whose expiry has passed. Expired and
// absent tokens validate identically, so this is hygiene only.
func (r *UserRepository) ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	const query = `
		UPDATE users SET token = NULL, token_expire = NULL
		WHERE token IS NOT NULL AND token_expire <= $1
	`
	cmd, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
