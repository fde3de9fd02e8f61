package models

import "time"

// SettingKey is a key of the closed settings enumeration.
type SettingKey string

const (
	SettingTMDBAPIKey SettingKey = "tmdb_api_key"
)

// SettingKeys lists every known setting key.
var SettingKeys = []SettingKey{SettingTMDBAPIKey}

// ParseSettingKey maps a raw key to a known [SettingKey].
func ParseSettingKey(raw string) (SettingKey, bool) {
	for _, key := range SettingKeys {
		if string(key) == raw {
			return key, true
		}
	}
	return "", false
}

// String returns the database key.
func (k SettingKey) String() string {
	return string(k)
}

// EnvVar returns the environment variable that overrides the stored value.
func (k SettingKey) EnvVar() string {
	switch k {
	case SettingTMDBAPIKey:
		return "TMDB_API_KEY"
	default:
		return ""
	}
}

// Description returns the human readable purpose of the setting.
func (k SettingKey) Description() string {
	switch k {
	case SettingTMDBAPIKey:
		return "API key for The Movie Database (TMDB)"
	default:
		return ""
	}
}

// Setting is a persisted key/value pair.
type Setting struct {
	Key         string    `json:"key"`
	Value       string    `json:"-"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Setting model.
func (s Setting) TableName() string {
	return "settings"
}

// SettingSource tells where the effective value of a setting comes from.
type SettingSource string

const (
	SettingSourceEnvironment SettingSource = "environment"
	SettingSourceDatabase    SettingSource = "database"
	SettingSourceNone        SettingSource = "none"
)

// SettingStatus is the masked view of one setting.
type SettingStatus struct {
	Key          string        `json:"key"`
	EnvVar       string        `json:"env_var"`
	Description  string        `json:"description"`
	IsConfigured bool          `json:"is_configured"`
	Source       SettingSource `json:"source"`
	ValuePreview *string       `json:"value_preview"`
}

// UpdateSettingRequest is the payload of PUT /settings/{key}.
type UpdateSettingRequest struct {
	Value string `json:"value" validate:"max=512"`
}

// ConnectionTestResult is the outcome of a provider connectivity test.
type ConnectionTestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
