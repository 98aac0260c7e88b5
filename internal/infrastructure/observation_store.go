package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"daylight-monitor/internal/application"
)

// observationRow is the persisted reading. One global slot: the primary key
// is fixed and every save overwrites it.
type observationRow struct {
	ID        uint `gorm:"primaryKey"`
	DayLength int64
	UpdatedAt time.Time
}

const observationSlot = 1

type SqliteObservationStore struct {
	db *gorm.DB
}

func NewObservationStore(path string) (*SqliteObservationStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open observation database: %w", err)
	}

	if err := db.AutoMigrate(&observationRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate observation database: %w", err)
	}

	return &SqliteObservationStore{db: db}, nil
}

// Load returns the last saved reading. A never-written slot is reported as
// absent, not as an error.
func (s *SqliteObservationStore) Load(ctx context.Context) (application.Observation, bool, error) {
	var row observationRow
	result := s.db.WithContext(ctx).First(&row, observationSlot)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return application.Observation{}, false, nil
	}
	if result.Error != nil {
		return application.Observation{}, false, result.Error
	}

	return application.Observation{DayLength: row.DayLength}, true, nil
}

// Save overwrites the slot, last write wins.
func (s *SqliteObservationStore) Save(ctx context.Context, obs application.Observation) error {
	row := observationRow{ID: observationSlot, DayLength: obs.DayLength}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}

func (s *SqliteObservationStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
