package db

import (
	"time"

	"github.com/voltshift/ampere/internal/models"
	"gorm.io/gorm"
)

type ScheduleRepository struct {
	database *gorm.DB
}

func NewScheduleRepository(database *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{database: database}
}

// ListByUser returns the user's schedules newest-first.
func (repo *ScheduleRepository) ListByUser(userID uint) ([]models.Schedule, error) {
	schedules := make([]models.Schedule, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (repo *ScheduleRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Schedule{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ScheduleRepository) FindByID(scheduleID uint) (models.Schedule, error) {
	var schedule models.Schedule
	if err := repo.database.First(&schedule, scheduleID).Error; err != nil {
		return models.Schedule{}, err
	}
	return schedule, nil
}

func (repo *ScheduleRepository) Create(schedule *models.Schedule) error {
	return repo.database.Create(schedule).Error
}

// Update replaces every mutable field of the row and refreshes updated_at.
// Variant fields outside the active type are written as-is; they may be nil.
// The struct update (not a map) is deliberate: the Days column goes through
// the JSON serializer only for struct fields.
func (repo *ScheduleRepository) Update(scheduleID uint, schedule *models.Schedule) error {
	schedule.UpdatedAt = time.Now()
	return repo.database.Model(&models.Schedule{}).
		Where("id = ?", scheduleID).
		Select(
			"name", "schedule_type", "days",
			"start_time", "end_time",
			"ready_by_time", "desired_charge_level",
			"ready_by_time_mileage", "desired_mileage",
			"updated_at",
		).
		Updates(schedule).Error
}

// DeleteByID is a silent no-op when no row matches.
func (repo *ScheduleRepository) DeleteByID(scheduleID uint) error {
	return repo.database.Delete(&models.Schedule{}, scheduleID).Error
}
