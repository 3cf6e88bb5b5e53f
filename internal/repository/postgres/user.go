package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/harshit1t/dashboard/internal/entities"
)

const (
	listUsersQuery      = `SELECT id, email, team_id, role FROM users ORDER BY id`
	selectUserByEmail   = `SELECT id, email, team_id, role FROM users WHERE email=$1`
	selectUserByID      = `SELECT id, email, team_id, role FROM users WHERE id=$1`
	insertUserQuery     = `INSERT INTO users(email, role, team_id) VALUES($1, $2, $3) RETURNING id, email, team_id, role`
	uniqueViolationCode = "23505"
	fkViolationCode     = "23503"
)

// ListUsers returns every registered user.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			p.log.Errorw("failed to scan user", "error", err)
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate users", "error", err)
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// GetUserByEmail fetches a user by unique email. Absence maps to ErrUserNotFound.
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetUserByID fetches a user by id.
func (p *Postgres) GetUserByID(ctx context.Context, id int64) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to get user by id", "error", err, "user_id", id)
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// CreateUser inserts a user and returns the stored row.
func (p *Postgres) CreateUser(ctx context.Context, user entities.NewUser) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, insertUserQuery, user.Email, int32(user.Role), user.TeamID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolationCode:
				return nil, entities.ErrEmailExists
			case fkViolationCode:
				return nil, entities.ErrTeamNotFound
			}
		}
		p.log.Errorw("failed to create user", "error", err, "email", user.Email)
		return nil, fmt.Errorf("create user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID, "role", u.Role.String())
	return u, nil
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var (
		u    entities.User
		role int32
	)
	if err := row.Scan(&u.ID, &u.Email, &u.TeamID, &role); err != nil {
		return nil, err
	}
	u.Role = entities.Role(role)
	return &u, nil
}
