package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/models"
)

type settingRepository struct {
	db *DB
}

func NewSettingRepository(db *DB, logger *logger.Logger) SettingRepository {
	logger.Debug().Msg("creating setting repository")
	return &settingRepository{db: db}
}

func settingFields(s *models.Setting) []any {
	return []any{&s.Key, &s.Value, &s.Description, &s.CreatedAt, &s.UpdatedAt}
}

// GetSetting returns the stored row for key or [ErrNotFound].
func (r *settingRepository) GetSetting(ctx context.Context, key string) (models.Setting, error) {
	log := logger.FromContext(ctx)

	c, err := r.db.conn(ctx)
	if err != nil {
		return models.Setting{}, err
	}
	defer c.Close()

	var setting models.Setting
	if err = c.QueryRowContext(ctx, getSetting, key).Scan(settingFields(&setting)...); err != nil {
		err = classifyError(err)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*settingRepository.GetSetting").Msg("error reading setting")
		}
		return models.Setting{}, err
	}

	return setting, nil
}

// UpsertSetting inserts the row or replaces value and description of an
// existing one. created_at of an existing row is preserved.
func (r *settingRepository) UpsertSetting(ctx context.Context, setting models.Setting) (models.Setting, error) {
	log := logger.FromContext(ctx)

	c, err := r.db.conn(ctx)
	if err != nil {
		return models.Setting{}, err
	}

	now := time.Now().UTC()

	_, err = c.ExecContext(ctx, upsertSetting, setting.Key, setting.Value, setting.Description, now, now)
	_ = c.Close()
	if err != nil {
		err = classifyError(err)
		// the value is a credential and is never logged
		log.Err(err).Str("func", "*settingRepository.UpsertSetting").Str("key", setting.Key).Msg("error saving setting")
		return models.Setting{}, err
	}

	return r.GetSetting(ctx, setting.Key)
}
