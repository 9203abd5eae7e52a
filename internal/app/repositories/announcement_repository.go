package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
)

// IAnnouncementRepository defines the interface for announcement operations
type IAnnouncementRepository interface {
	List(ctx context.Context) ([]dto.AnnouncementView, error)
	Create(ctx context.Context, announcement *models.Announcement) (int64, error)
}

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// List retrieves all announcements with their author's name, newest first
func (r *AnnouncementRepository) List(ctx context.Context) ([]dto.AnnouncementView, error) {
	query := `
		SELECT a.id, a.title, a.message, a.target_audience, a.priority, a.is_banner,
		       a.created_by, a.expires_at, a.created_at, u.full_name
		FROM announcements a
		JOIN users u ON a.created_by = u.id
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := []dto.AnnouncementView{}
	for rows.Next() {
		var view dto.AnnouncementView
		err := rows.Scan(
			&view.ID,
			&view.Title,
			&view.Message,
			&view.TargetAudience,
			&view.Priority,
			&view.IsBanner,
			&view.CreatedBy,
			&view.ExpiresAt,
			&view.CreatedAt,
			&view.CreatedByName,
		)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return announcements, nil
}

// Create inserts a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) (int64, error) {
	query := `
		INSERT INTO announcements (title, message, target_audience, priority, is_banner, created_by, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		announcement.Title,
		announcement.Message,
		announcement.TargetAudience,
		announcement.Priority,
		announcement.IsBanner,
		announcement.CreatedBy,
		announcement.ExpiresAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	announcement.ID = id
	return id, nil
}
