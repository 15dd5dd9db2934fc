package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, role, position, department, hire_date,
		manager_id, must_reset_password, created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var role string
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.Position,
		&u.Department,
		&u.HireDate,
		&u.ManagerID,
		&u.MustResetPassword,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	u.Role = user.Role(role)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			name, email, password_hash, role, position, department, hire_date,
			manager_id, must_reset_password
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Name,
		newUser.Email,
		newUser.PasswordHash,
		string(newUser.Role),
		newUser.Position,
		newUser.Department,
		newUser.HireDate,
		newUser.ManagerID,
		newUser.MustResetPassword,
	))
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return user.User{}, user.ErrUserEmailExists
		case isForeignKeyViolation(err):
			return user.User{}, user.ErrManagerNotFound
		}
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	found, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	found, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	}

	return found, nil
}

// ExistsByID implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	roles := make([]string, 0, len(filter.Roles))
	for _, role := range filter.Roles {
		roles = append(roles, string(role))
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE role = ANY($1) ORDER BY name, email`

	rows, err := q.Query(ctx, query, roles)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// GetPositionForUpdate implements user.UserRepository.
// The row stays locked until the surrounding transaction ends.
func (r *userRepositoryImpl) GetPositionForUpdate(ctx context.Context, id string) (*string, error) {
	q := GetQuerier(ctx, r.db)

	var position *string
	err := q.QueryRow(ctx, `SELECT position FROM users WHERE id = $1 FOR UPDATE`, id).Scan(&position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("lock user position: %w", err)
	}
	return position, nil
}

// UpdatePosition implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePosition(ctx context.Context, id string, position string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET position = $1, updated_at = NOW() WHERE id = $2`, position, id)
	if err != nil {
		return fmt.Errorf("update user position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string, mustReset bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, must_reset_password = $2, updated_at = NOW()
		WHERE id = $3
	`
	tag, err := q.Exec(ctx, query, passwordHash, mustReset, id)
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
