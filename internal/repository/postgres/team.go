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
	insertTeamQuery   = `INSERT INTO teams(name, owner_id) VALUES($1, $2) RETURNING id, name, owner_id`
	selectTeamByID    = `SELECT id, name, owner_id FROM teams WHERE id=$1`
	selectTeamByOwner = `SELECT id, name, owner_id FROM teams WHERE owner_id=$1 LIMIT 1`
	// enumeration order is whatever the storage returns, no explicit sort
	listTeamsQuery = `SELECT id, name, owner_id FROM teams`
)

// CreateTeam inserts a team owned by the given user.
func (p *Postgres) CreateTeam(ctx context.Context, name string, ownerID int64) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, insertTeamQuery, name, ownerID).Scan(&t.ID, &t.Name, &t.OwnerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to create team", "error", err, "name", name, "owner_id", ownerID)
		return nil, fmt.Errorf("insert team: %w", err)
	}

	p.log.Infow("team created", "team_id", t.ID, "owner_id", t.OwnerID)
	return &t, nil
}

// GetTeamByID fetches a team by id.
func (p *Postgres) GetTeamByID(ctx context.Context, id int64) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, selectTeamByID, id).Scan(&t.ID, &t.Name, &t.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		p.log.Errorw("failed to get team", "error", err, "team_id", id)
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}

// GetTeamByOwner fetches the team owned by the given user.
func (p *Postgres) GetTeamByOwner(ctx context.Context, ownerID int64) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, selectTeamByOwner, ownerID).Scan(&t.ID, &t.Name, &t.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		p.log.Errorw("failed to get team by owner", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("get team by owner: %w", err)
	}
	return &t, nil
}

// ListTeams returns every team in the system.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, listTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.OwnerID); err != nil {
			p.log.Errorw("failed to scan team", "error", err)
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate teams", "error", err)
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	return teams, nil
}
