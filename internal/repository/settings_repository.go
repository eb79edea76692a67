package repository

import (
	"context"

	"github.com/sjperalta/contratus-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository reads and writes the single settings row
type SettingsRepository interface {
	// Get returns the settings row, creating it from defaults when missing
	Get(ctx context.Context, defaults models.Settings) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, defaults models.Settings) (*models.Settings, error) {
	defaults.ID = models.SettingsID
	// Concurrent first reads race on the insert; DO NOTHING keeps the winner.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaults).Error
	if err != nil {
		return nil, err
	}

	var settings models.Settings
	if err := r.db.WithContext(ctx).First(&settings, models.SettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	settings.ID = models.SettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}
