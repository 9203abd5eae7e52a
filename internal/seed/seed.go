package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/yigit/campussphere/internal/pkg/auth"
)

// defaultDepartments are created on first start so the registration and
// profile forms have something to offer.
var defaultDepartments = []struct {
	Name string
	Code string
}{
	{"Computer Science", "CS"},
	{"Electrical Engineering", "EE"},
	{"Mechanical Engineering", "ME"},
	{"Business Administration", "BBA"},
	{"Mathematics", "MATH"},
	{"Physics", "PHYS"},
}

// defaultSettings are the baseline platform settings
var defaultSettings = map[string]string{
	"platform_name":        "CampusSphere",
	"registration_open":    "true",
	"maintenance_mode":     "false",
	"max_events_per_month": "20",
}

const (
	defaultAdminEmail    = "admin@campussphere.edu"
	defaultAdminName     = "Platform Administrator"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData seeds departments, baseline settings and the default
// admin account. Every insert is idempotent so repeated startups are safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	for _, dept := range defaultDepartments {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO departments (name, code)
			VALUES ($1, $2)
			ON CONFLICT (code) DO NOTHING
		`, dept.Name, dept.Code)
		if err != nil {
			lgr.Error().Err(err).Str("department", dept.Code).Msg("Error seeding department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for key, value := range defaultSettings {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO platform_settings (setting_key, setting_value)
			VALUES ($1, $2)
			ON CONFLICT (setting_key) DO NOTHING
		`, key, value)
		if err != nil {
			lgr.Error().Err(err).Str("setting", key).Msg("Error seeding setting")
			finalErr = errors.Join(finalErr, err)
		}
	}

	var adminExists bool
	err := dbPool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, defaultAdminEmail,
	).Scan(&adminExists)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin")
		return errors.Join(finalErr, err)
	}

	if !adminExists {
		lgr.Info().Msg("Creating default admin user...")

		hash, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			return errors.Join(finalErr, err)
		}

		_, err = dbPool.Exec(ctx, `
			INSERT INTO users (full_name, email, password_hash, role, status)
			VALUES ($1, $2, $3, 'admin', 'active')
			ON CONFLICT (email) DO NOTHING
		`, defaultAdminName, defaultAdminEmail, hash)
		if err != nil {
			lgr.Error().Err(err).Msg("Error creating default admin")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin user created")
		}
	}

	return finalErr
}
