package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campussphere/internal/app/models/dto"
)

// IMentorshipRepository defines the interface for mentorship relationship queries
type IMentorshipRepository interface {
	ListActiveMentees(ctx context.Context, mentorID int64) ([]dto.MenteeView, error)
}

// MentorshipRepository handles database operations for mentorship relationships
type MentorshipRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{db: db}
}

// ListActiveMentees retrieves a mentor's active mentees with contact details
func (r *MentorshipRepository) ListActiveMentees(ctx context.Context, mentorID int64) ([]dto.MenteeView, error) {
	query := `
		SELECT m.id, m.mentor_id, m.mentee_id, m.status, m.created_at, m.updated_at,
		       s.full_name, s.email, d.name
		FROM mentorship_relationships m
		JOIN users s ON m.mentee_id = s.id
		LEFT JOIN departments d ON s.department_id = d.id
		WHERE m.mentor_id = $1 AND m.status = 'active'
		ORDER BY m.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mentees := []dto.MenteeView{}
	for rows.Next() {
		var view dto.MenteeView
		err := rows.Scan(
			&view.ID,
			&view.MentorID,
			&view.MenteeID,
			&view.Status,
			&view.CreatedAt,
			&view.UpdatedAt,
			&view.MenteeName,
			&view.MenteeEmail,
			&view.DepartmentName,
		)
		if err != nil {
			return nil, err
		}
		mentees = append(mentees, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mentees, nil
}
