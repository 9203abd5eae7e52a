package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campussphere/internal/app/models/dto"
)

// IAnalyticsRepository defines the interface for the admin analytics aggregates
type IAnalyticsRepository interface {
	UserStats(ctx context.Context) ([]dto.RoleStatusCount, error)
	EventStats(ctx context.Context) ([]dto.CategoryStatusCount, error)
	MonthlyParticipation(ctx context.Context) ([]dto.MonthlyRegistrations, error)
	DepartmentStats(ctx context.Context) ([]dto.DepartmentEngagement, error)
}

// AnalyticsRepository runs the read-only aggregate queries behind the admin
// analytics dashboard
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// UserStats counts users grouped by role and status
func (r *AnalyticsRepository) UserStats(ctx context.Context) ([]dto.RoleStatusCount, error) {
	query := `
		SELECT role, status, COUNT(*)
		FROM users
		GROUP BY role, status
		ORDER BY role, status
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []dto.RoleStatusCount{}
	for rows.Next() {
		var row dto.RoleStatusCount
		if err := rows.Scan(&row.Role, &row.Status, &row.Count); err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// EventStats counts events grouped by category and status
func (r *AnalyticsRepository) EventStats(ctx context.Context) ([]dto.CategoryStatusCount, error) {
	query := `
		SELECT category, status, COUNT(*)
		FROM events
		GROUP BY category, status
		ORDER BY category, status
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []dto.CategoryStatusCount{}
	for rows.Next() {
		var row dto.CategoryStatusCount
		if err := rows.Scan(&row.Category, &row.Status, &row.Count); err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// MonthlyParticipation counts event registrations per calendar month over the
// trailing year
func (r *AnalyticsRepository) MonthlyParticipation(ctx context.Context) ([]dto.MonthlyRegistrations, error) {
	query := `
		SELECT to_char(registered_at, 'YYYY-MM') AS month, COUNT(*)
		FROM event_registrations
		WHERE registered_at >= NOW() - INTERVAL '12 months'
		GROUP BY month
		ORDER BY month
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	months := []dto.MonthlyRegistrations{}
	for rows.Next() {
		var row dto.MonthlyRegistrations
		if err := rows.Scan(&row.Month, &row.Registrations); err != nil {
			return nil, err
		}
		months = append(months, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return months, nil
}

// DepartmentStats measures per-department engagement: member count, events
// organized by members and registrations made by members.
func (r *AnalyticsRepository) DepartmentStats(ctx context.Context) ([]dto.DepartmentEngagement, error) {
	query := `
		SELECT d.name,
		       COUNT(DISTINCT u.id) AS total_users,
		       COUNT(DISTINCT e.id) AS events_organized,
		       COUNT(DISTINCT er.id) AS total_registrations
		FROM departments d
		LEFT JOIN users u ON u.department_id = d.id
		LEFT JOIN events e ON e.organizer_id = u.id
		LEFT JOIN event_registrations er ON er.user_id = u.id
		GROUP BY d.id, d.name
		ORDER BY total_registrations DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []dto.DepartmentEngagement{}
	for rows.Next() {
		var row dto.DepartmentEngagement
		if err := rows.Scan(&row.Department, &row.TotalUsers, &row.EventsOrganized, &row.TotalRegistrations); err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
