package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/pkg/apperrors"
)

// ICollaborationRepository defines the interface for collaboration post operations
type ICollaborationRepository interface {
	ListActive(ctx context.Context, viewerID int64) ([]dto.CollaborationPostView, error)
	Create(ctx context.Context, post *models.CollaborationPost) (int64, error)
	GetActiveByID(ctx context.Context, id int64) (*models.CollaborationPost, error)
	HasInterest(ctx context.Context, postID, userID int64) (bool, error)
	CreateInterest(ctx context.Context, postID, userID int64, message string) error
	ListRecentActive(ctx context.Context, limit int) ([]dto.FeedPostView, error)
}

// CollaborationRepository handles database operations for collaboration posts
// and interest records
type CollaborationRepository struct {
	db *pgxpool.Pool
}

// NewCollaborationRepository creates a new CollaborationRepository
func NewCollaborationRepository(db *pgxpool.Pool) *CollaborationRepository {
	return &CollaborationRepository{db: db}
}

const postColumns = `p.id, p.author_id, p.title, p.description, p.skills_required,
	p.team_size_needed, p.registration_form_url, p.project_category, p.status,
	p.created_at, p.updated_at`

// scanPost scans a post row selected with postColumns, then any extras
func scanPost(row pgx.Row, post *models.CollaborationPost, extras ...interface{}) error {
	var skills *string

	dest := []interface{}{
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Description,
		&skills,
		&post.TeamSizeNeeded,
		&post.RegistrationFormURL,
		&post.ProjectCategory,
		&post.Status,
		&post.CreatedAt,
		&post.UpdatedAt,
	}
	dest = append(dest, extras...)

	if err := row.Scan(dest...); err != nil {
		return err
	}

	post.SkillsRequired = models.ParseStoredList(skills)
	return nil
}

// ListActive retrieves all active posts with author name, interest counts and
// whether the viewer already expressed interest, newest first.
func (r *CollaborationRepository) ListActive(ctx context.Context, viewerID int64) ([]dto.CollaborationPostView, error) {
	query := `
		SELECT ` + postColumns + `, a.full_name,
		       (SELECT COUNT(*) FROM collaboration_interests ci WHERE ci.post_id = p.id),
		       EXISTS(SELECT 1 FROM collaboration_interests mi WHERE mi.post_id = p.id AND mi.user_id = $1)
		FROM collaboration_posts p
		JOIN users a ON p.author_id = a.id
		WHERE p.status = 'active'
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []dto.CollaborationPostView{}
	for rows.Next() {
		var view dto.CollaborationPostView
		err := scanPost(rows, &view.CollaborationPost,
			&view.AuthorName,
			&view.InterestCount,
			&view.UserInterested,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// Create inserts a new collaboration post
func (r *CollaborationRepository) Create(ctx context.Context, post *models.CollaborationPost) (int64, error) {
	query := `
		INSERT INTO collaboration_posts (author_id, title, description, skills_required,
			team_size_needed, registration_form_url, project_category, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		post.AuthorID,
		post.Title,
		post.Description,
		post.SkillsRequired.Stored(),
		post.TeamSizeNeeded,
		post.RegistrationFormURL,
		post.ProjectCategory,
		post.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	post.ID = id
	return id, nil
}

// GetActiveByID retrieves a post by id constrained to active status
func (r *CollaborationRepository) GetActiveByID(ctx context.Context, id int64) (*models.CollaborationPost, error) {
	query := `
		SELECT ` + postColumns + `
		FROM collaboration_posts p
		WHERE p.id = $1 AND p.status = 'active'
	`

	var post models.CollaborationPost
	err := scanPost(r.db.QueryRow(ctx, query, id), &post)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// HasInterest checks whether a user already expressed interest in a post
func (r *CollaborationRepository) HasInterest(ctx context.Context, postID, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM collaboration_interests WHERE post_id = $1 AND user_id = $2)`
	if err := r.db.QueryRow(ctx, query, postID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CreateInterest inserts an interest record. The unique constraint on
// (post_id, user_id) backs the duplicate check under concurrency.
func (r *CollaborationRepository) CreateInterest(ctx context.Context, postID, userID int64, message string) error {
	query := `
		INSERT INTO collaboration_interests (post_id, user_id, message)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, postID, userID, message)
	return err
}

// ListRecentActive retrieves the most recent active posts with author contact
// info, for the faculty mentorship feed.
func (r *CollaborationRepository) ListRecentActive(ctx context.Context, limit int) ([]dto.FeedPostView, error) {
	query := `
		SELECT ` + postColumns + `, a.full_name, a.email
		FROM collaboration_posts p
		JOIN users a ON p.author_id = a.id
		WHERE p.status = 'active'
		ORDER BY p.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []dto.FeedPostView{}
	for rows.Next() {
		var view dto.FeedPostView
		err := scanPost(rows, &view.CollaborationPost,
			&view.AuthorName,
			&view.AuthorEmail,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
