package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campussphere/internal/app/models"
)

// IDepartmentRepository defines the interface for department lookups
type IDepartmentRepository interface {
	GetAll(ctx context.Context) ([]models.Department, error)
	GetIDByName(ctx context.Context, name string) (int64, bool, error)
}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// GetAll retrieves all departments ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]models.Department, error) {
	query := `
		SELECT id, name, code
		FROM departments
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := []models.Department{}
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.Code,
		); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetIDByName resolves a department id from its name. The second return value
// reports whether the name matched a department.
func (r *DepartmentRepository) GetIDByName(ctx context.Context, name string) (int64, bool, error) {
	query := `SELECT id FROM departments WHERE name = $1`

	var id int64
	err := r.db.QueryRow(ctx, query, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return id, true, nil
}
