package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/my-movies/internal/adapter"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/models"
)

// maskedPreview replaces the value of a configured setting in status views.
const maskedPreview = "********"

// connectionTestQuery is the search issued by TestTMDBConnection.
const connectionTestQuery = "Matrix"

type settingsService struct {
	settings store.SettingRepository
	tmdb     adapter.TMDBClient

	lookupEnv func(string) (string, bool)

	logger *logger.Logger
}

// NewSettingsService builds the settings service. tmdb receives every written
// TMDB API key so that it applies without a restart.
func NewSettingsService(settings store.SettingRepository, tmdb adapter.TMDBClient, logger *logger.Logger) SettingsService {
	return &settingsService{
		settings:  settings,
		tmdb:      tmdb,
		lookupEnv: os.LookupEnv,
		logger:    logger,
	}
}

func (s *settingsService) Get(ctx context.Context, key models.SettingKey) (string, bool, error) {
	value, source, err := s.resolve(ctx, key)
	if err != nil {
		return "", false, err
	}
	return value, source != models.SettingSourceNone, nil
}

func (s *settingsService) GetRequired(ctx context.Context, key models.SettingKey) (string, error) {
	value, ok, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s is not set (set %s or store it in the settings)", ErrConfiguration, key, key.EnvVar())
	}
	return value, nil
}

func (s *settingsService) Update(ctx context.Context, rawKey string, req models.UpdateSettingRequest) (models.SettingStatus, error) {
	log := logger.FromContext(ctx)

	key, ok := models.ParseSettingKey(rawKey)
	if !ok {
		return models.SettingStatus{}, validationError("unknown setting: %s", rawKey)
	}

	description := key.Description()
	_, err := s.settings.UpsertSetting(ctx, models.Setting{
		Key:         key.String(),
		Value:       req.Value,
		Description: &description,
	})
	if err != nil {
		log.Err(err).Str("func", "*settingsService.Update").Str("key", key.String()).Msg("storing setting failed")
		return models.SettingStatus{}, mapError(err, ErrNotFound)
	}

	// the written key takes over at runtime even when TMDB_API_KEY is set;
	// clearing it falls back to the environment
	if key == models.SettingTMDBAPIKey && s.tmdb != nil {
		apiKey := req.Value
		if apiKey == "" {
			if apiKey, _, err = s.Get(ctx, key); err != nil {
				return models.SettingStatus{}, err
			}
		}
		s.tmdb.SetAPIKey(apiKey)
	}

	log.Info().Str("key", key.String()).Msg("setting updated")

	return s.status(ctx, key)
}

func (s *settingsService) Status(ctx context.Context) ([]models.SettingStatus, error) {
	statuses := make([]models.SettingStatus, 0, len(models.SettingKeys))
	for _, key := range models.SettingKeys {
		status, err := s.status(ctx, key)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// TestTMDBConnection never fails; the outcome is described in the result.
func (s *settingsService) TestTMDBConnection(ctx context.Context) models.ConnectionTestResult {
	log := logger.FromContext(ctx)

	if s.tmdb == nil {
		return models.ConnectionTestResult{Success: false, Message: "TMDB client is not available"}
	}
	if _, err := s.tmdb.APIKey(); err != nil {
		return models.ConnectionTestResult{Success: false, Message: "TMDB API key is not configured"}
	}

	results, err := s.tmdb.SearchMovies(ctx, models.TMDBSearchQuery{Query: connectionTestQuery, MaxPages: 1})
	if err != nil {
		log.Err(err).Str("func", "*settingsService.TestTMDBConnection").Msg("TMDB connection test failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.ConnectionTestResult{Success: false, Message: "TMDB rejected the API key"}
		}
		return models.ConnectionTestResult{Success: false, Message: fmt.Sprintf("TMDB connection failed: %v", err)}
	}

	return models.ConnectionTestResult{
		Success: true,
		Message: fmt.Sprintf("TMDB connection successful (%d results for %q)", len(results), connectionTestQuery),
	}
}

func (s *settingsService) status(ctx context.Context, key models.SettingKey) (models.SettingStatus, error) {
	_, source, err := s.resolve(ctx, key)
	if err != nil {
		return models.SettingStatus{}, err
	}

	status := models.SettingStatus{
		Key:          key.String(),
		EnvVar:       key.EnvVar(),
		Description:  key.Description(),
		IsConfigured: source != models.SettingSourceNone,
		Source:       source,
	}
	if status.IsConfigured {
		preview := maskedPreview
		status.ValuePreview = &preview
	}
	return status, nil
}

// resolve applies the precedence environment > database > none. Empty
// values count as unset at both levels.
func (s *settingsService) resolve(ctx context.Context, key models.SettingKey) (string, models.SettingSource, error) {
	if env := key.EnvVar(); env != "" {
		if value, ok := s.lookupEnv(env); ok && value != "" {
			return value, models.SettingSourceEnvironment, nil
		}
	}

	setting, err := s.settings.GetSetting(ctx, key.String())
	if errors.Is(err, store.ErrNotFound) {
		return "", models.SettingSourceNone, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*settingsService.resolve").Str("key", key.String()).Msg("reading setting failed")
		return "", models.SettingSourceNone, mapError(err, ErrNotFound)
	}
	if setting.Value == "" {
		return "", models.SettingSourceNone, nil
	}
	return setting.Value, models.SettingSourceDatabase, nil
}
