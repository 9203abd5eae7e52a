package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/pkg/apperrors"
)

// IEventRepository defines the interface for event-related database operations
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetApprovedByID(ctx context.Context, id int64) (*models.Event, error)
	CountRegistrations(ctx context.Context, eventID int64) (int, error)
	IsRegistered(ctx context.Context, userID, eventID int64) (bool, error)
	CreateRegistration(ctx context.Context, userID, eventID int64) error
	ListApprovedForStudent(ctx context.Context, viewerID int64) ([]dto.StudentEventView, error)
	ListOrganizedBy(ctx context.Context, organizerID int64) ([]dto.OrganizedEventView, error)
	ListByOrganizerOrReviewer(ctx context.Context, facultyID int64) ([]dto.FacultyEventView, error)
	ListPendingProposals(ctx context.Context) ([]dto.ProposalView, error)
	IsPendingProposal(ctx context.Context, id int64) (bool, error)
	Review(ctx context.Context, id int64, status models.EventStatus, reviewerID int64, notes string) (bool, error)
	ListAll(ctx context.Context) ([]dto.AdminEventView, error)
	SetFeatured(ctx context.Context, id int64, featured bool) (bool, error)
}

// EventRepository handles database operations for events and registrations
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `e.id, e.title, e.description, e.start_datetime, e.end_datetime,
	e.location, e.category, e.eligibility_criteria, e.registration_form_url,
	e.organizer_id, e.status, e.reviewed_by, e.reviewed_at, e.admin_notes,
	e.max_participants, e.is_featured, e.created_at, e.updated_at`

// eventFields returns scan destinations matching eventColumns, followed by extras
func eventFields(e *models.Event, extras ...interface{}) []interface{} {
	dest := []interface{}{
		&e.ID,
		&e.Title,
		&e.Description,
		&e.StartDatetime,
		&e.EndDatetime,
		&e.Location,
		&e.Category,
		&e.EligibilityCriteria,
		&e.RegistrationFormURL,
		&e.OrganizerID,
		&e.Status,
		&e.ReviewedBy,
		&e.ReviewedAt,
		&e.AdminNotes,
		&e.MaxParticipants,
		&e.IsFeatured,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
	return append(dest, extras...)
}

// Create inserts a new event row
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	query := `
		INSERT INTO events (title, description, start_datetime, end_datetime, location,
			category, eligibility_criteria, registration_form_url, organizer_id, status,
			reviewed_by, reviewed_at, max_participants)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.StartDatetime,
		event.EndDatetime,
		event.Location,
		event.Category,
		event.EligibilityCriteria,
		event.RegistrationFormURL,
		event.OrganizerID,
		event.Status,
		event.ReviewedBy,
		event.ReviewedAt,
		event.MaxParticipants,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	event.ID = id
	return id, nil
}

// GetApprovedByID retrieves an event by id constrained to approved status.
// Events in any other state are not open for registration.
func (r *EventRepository) GetApprovedByID(ctx context.Context, id int64) (*models.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events e
		WHERE e.id = $1 AND e.status = 'approved'
	`, eventColumns)

	var event models.Event
	err := r.db.QueryRow(ctx, query, id).Scan(eventFields(&event)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// CountRegistrations returns the number of registrations for an event
func (r *EventRepository) CountRegistrations(ctx context.Context, eventID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`
	if err := r.db.QueryRow(ctx, query, eventID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// IsRegistered checks whether a user is already registered for an event
func (r *EventRepository) IsRegistered(ctx context.Context, userID, eventID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM event_registrations WHERE user_id = $1 AND event_id = $2)`
	if err := r.db.QueryRow(ctx, query, userID, eventID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CreateRegistration inserts a registration row. The unique constraint on
// (user_id, event_id) is the last line of defense against double registration.
func (r *EventRepository) CreateRegistration(ctx context.Context, userID, eventID int64) error {
	query := `
		INSERT INTO event_registrations (user_id, event_id, status)
		VALUES ($1, $2, 'registered')
	`

	_, err := r.db.Exec(ctx, query, userID, eventID)
	return err
}

// ListApprovedForStudent retrieves all approved events with organizer info,
// participant counts and the viewer's own registration state.
func (r *EventRepository) ListApprovedForStudent(ctx context.Context, viewerID int64) ([]dto.StudentEventView, error) {
	query := fmt.Sprintf(`
		SELECT %s, o.full_name, d.name, er.status, er.registered_at,
		       (SELECT COUNT(*) FROM event_registrations c WHERE c.event_id = e.id)
		FROM events e
		JOIN users o ON e.organizer_id = o.id
		LEFT JOIN departments d ON o.department_id = d.id
		LEFT JOIN event_registrations er ON er.event_id = e.id AND er.user_id = $1
		WHERE e.status = 'approved'
		ORDER BY e.start_datetime
	`, eventColumns)

	rows, err := r.db.Query(ctx, query, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []dto.StudentEventView{}
	for rows.Next() {
		var view dto.StudentEventView
		err := rows.Scan(eventFields(&view.Event,
			&view.OrganizerName,
			&view.OrganizerDepartment,
			&view.RegistrationStatus,
			&view.RegisteredAt,
			&view.ParticipantCount,
		)...)
		if err != nil {
			return nil, err
		}
		events = append(events, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// ListOrganizedBy retrieves all events created by a given organizer, newest first
func (r *EventRepository) ListOrganizedBy(ctx context.Context, organizerID int64) ([]dto.OrganizedEventView, error) {
	query := fmt.Sprintf(`
		SELECT %s, rv.full_name,
		       (SELECT COUNT(*) FROM event_registrations c WHERE c.event_id = e.id)
		FROM events e
		LEFT JOIN users rv ON e.reviewed_by = rv.id
		WHERE e.organizer_id = $1
		ORDER BY e.created_at DESC
	`, eventColumns)

	rows, err := r.db.Query(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []dto.OrganizedEventView{}
	for rows.Next() {
		var view dto.OrganizedEventView
		err := rows.Scan(eventFields(&view.Event,
			&view.ReviewedByName,
			&view.RegistrationCount,
		)...)
		if err != nil {
			return nil, err
		}
		events = append(events, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// ListByOrganizerOrReviewer retrieves events a faculty member organized or reviewed
func (r *EventRepository) ListByOrganizerOrReviewer(ctx context.Context, facultyID int64) ([]dto.FacultyEventView, error) {
	query := fmt.Sprintf(`
		SELECT %s, o.full_name,
		       (SELECT COUNT(*) FROM event_registrations c WHERE c.event_id = e.id)
		FROM events e
		LEFT JOIN users o ON e.organizer_id = o.id
		WHERE e.organizer_id = $1 OR e.reviewed_by = $1
		ORDER BY e.start_datetime DESC
	`, eventColumns)

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []dto.FacultyEventView{}
	for rows.Next() {
		var view dto.FacultyEventView
		err := rows.Scan(eventFields(&view.Event,
			&view.OrganizerName,
			&view.ParticipantCount,
		)...)
		if err != nil {
			return nil, err
		}
		events = append(events, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// ListPendingProposals retrieves all proposals awaiting review, oldest first
func (r *EventRepository) ListPendingProposals(ctx context.Context) ([]dto.ProposalView, error) {
	query := fmt.Sprintf(`
		SELECT %s, s.full_name, s.email, d.name
		FROM events e
		JOIN users s ON e.organizer_id = s.id
		LEFT JOIN departments d ON s.department_id = d.id
		WHERE e.status = 'pending_approval'
		ORDER BY e.created_at
	`, eventColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proposals := []dto.ProposalView{}
	for rows.Next() {
		var view dto.ProposalView
		err := rows.Scan(eventFields(&view.Event,
			&view.StudentName,
			&view.StudentEmail,
			&view.DepartmentName,
		)...)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return proposals, nil
}

// IsPendingProposal reports whether an event exists and is still awaiting review
func (r *EventRepository) IsPendingProposal(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1 AND status = 'pending_approval')`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Review applies a review decision to a pending proposal as one atomic update.
// The status guard in the WHERE clause makes concurrent reviews race-safe:
// exactly one reviewer observes a row change, later ones see zero rows.
func (r *EventRepository) Review(ctx context.Context, id int64, status models.EventStatus, reviewerID int64, notes string) (bool, error) {
	query := `
		UPDATE events
		SET status = $1, reviewed_by = $2, reviewed_at = NOW(), admin_notes = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'pending_approval'
	`

	tag, err := r.db.Exec(ctx, query, status, reviewerID, notes, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// ListAll retrieves every event regardless of status, newest first
func (r *EventRepository) ListAll(ctx context.Context) ([]dto.AdminEventView, error) {
	query := fmt.Sprintf(`
		SELECT %s, o.full_name, o.role, d.name,
		       (SELECT COUNT(*) FROM event_registrations c WHERE c.event_id = e.id)
		FROM events e
		JOIN users o ON e.organizer_id = o.id
		LEFT JOIN departments d ON o.department_id = d.id
		ORDER BY e.created_at DESC
	`, eventColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []dto.AdminEventView{}
	for rows.Next() {
		var view dto.AdminEventView
		err := rows.Scan(eventFields(&view.Event,
			&view.OrganizerName,
			&view.OrganizerRole,
			&view.OrganizerDepartment,
			&view.ParticipantCount,
		)...)
		if err != nil {
			return nil, err
		}
		events = append(events, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// SetFeatured toggles the featured flag. Returns false if the event does not exist.
func (r *EventRepository) SetFeatured(ctx context.Context, id int64, featured bool) (bool, error) {
	query := `UPDATE events SET is_featured = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, featured, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
