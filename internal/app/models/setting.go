package models

import (
	"time"
)

// PlatformSetting is a single key/value pair from the 'platform_settings' table
type PlatformSetting struct {
	Key       string    `json:"setting_key" db:"setting_key"`
	Value     string    `json:"setting_value" db:"setting_value"`
	UpdatedBy *int64    `json:"updated_by,omitempty" db:"updated_by"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
