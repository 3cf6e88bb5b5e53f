package postgres

import (
	"context"
	"fmt"

	"github.com/harshit1t/dashboard/internal/entities"
)

const teamDashboardsQuery = `
SELECT d.id, d.name, d.slug, d."order"
FROM team_dashboard_access tda
JOIN dashboards d ON d.id = tda.dashboard_id
WHERE tda.team_id = $1
ORDER BY d."order" ASC`

// ListTeamDashboards returns the dashboards granted to a team,
// sorted by the catalog display order.
func (p *Postgres) ListTeamDashboards(ctx context.Context, teamID int64) ([]entities.Dashboard, error) {
	rows, err := p.db.Query(ctx, teamDashboardsQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team dashboards: %w", err)
	}
	defer rows.Close()

	dashboards := make([]entities.Dashboard, 0)
	for rows.Next() {
		var d entities.Dashboard
		if err := rows.Scan(&d.ID, &d.Name, &d.Slug, &d.Order); err != nil {
			p.log.Errorw("failed to scan dashboard", "error", err, "team_id", teamID)
			return nil, fmt.Errorf("scan dashboard: %w", err)
		}
		dashboards = append(dashboards, d)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate dashboards", "error", err, "team_id", teamID)
		return nil, fmt.Errorf("iterate dashboards: %w", err)
	}

	return dashboards, nil
}
