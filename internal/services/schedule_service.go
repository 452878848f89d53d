package services

import (
	"errors"

	"github.com/voltshift/ampere/internal/models"
)

var ErrScheduleLimitReached = errors.New("maximum limit of 10 schedules reached")

type ScheduleRepository interface {
	ListByUser(userID uint) ([]models.Schedule, error)
	CountByUser(userID uint) (int64, error)
	Create(schedule *models.Schedule) error
	Update(scheduleID uint, schedule *models.Schedule) error
	DeleteByID(scheduleID uint) error
}

type ScheduleService struct {
	schedules ScheduleRepository
}

func NewScheduleService(schedules ScheduleRepository) *ScheduleService {
	return &ScheduleService{schedules: schedules}
}

func (service *ScheduleService) ListForUser(userID uint) ([]models.Schedule, error) {
	return service.schedules.ListByUser(userID)
}

// Create validates the draft and persists it for userID, returning the new
// id. The owner comes from the authenticated session, never from the draft.
// The schedule cap is re-checked here even when the caller already gated on
// it; a stale caller-side count must not slip an eleventh row in.
func (service *ScheduleService) Create(userID uint, draft ScheduleDraft) (uint, error) {
	count, err := service.schedules.CountByUser(userID)
	if err != nil {
		return 0, err
	}
	if count >= models.MaxSchedulesPerUser {
		return 0, ErrScheduleLimitReached
	}

	normalized, err := NormalizeScheduleDraft(draft)
	if err != nil {
		return 0, err
	}

	schedule := scheduleFromDraft(normalized)
	schedule.UserID = userID
	if err := service.schedules.Create(&schedule); err != nil {
		return 0, err
	}
	return schedule.ID, nil
}

// Update replaces all mutable fields of the schedule. Nothing is written when
// the draft fails validation. Ownership is not re-checked here; callers only
// ever hold ids from their own list.
func (service *ScheduleService) Update(scheduleID uint, draft ScheduleDraft) error {
	normalized, err := NormalizeScheduleDraft(draft)
	if err != nil {
		return err
	}

	schedule := scheduleFromDraft(normalized)
	return service.schedules.Update(scheduleID, &schedule)
}

// Delete removes the schedule; a missing id is a silent no-op.
func (service *ScheduleService) Delete(scheduleID uint) error {
	return service.schedules.DeleteByID(scheduleID)
}

func scheduleFromDraft(draft ScheduleDraft) models.Schedule {
	return models.Schedule{
		Name:               draft.Name,
		ScheduleType:       draft.ScheduleType,
		Days:               draft.Days,
		StartTime:          draft.StartTime,
		EndTime:            draft.EndTime,
		ReadyByTime:        draft.ReadyByTime,
		DesiredChargeLevel: draft.DesiredChargeLevel,
		ReadyByTimeMileage: draft.ReadyByTimeMileage,
		DesiredMileage:     draft.DesiredMileage,
	}
}
