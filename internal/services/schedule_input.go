package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/voltshift/ampere/internal/models"
)

// Validation failures are user-correctable; each message names the offending
// field the way the schedule form reports it.
var (
	ErrScheduleNameRequired  = errors.New("name required")
	ErrScheduleDaysRequired  = errors.New("at least one day required")
	ErrScheduleDayInvalid    = errors.New("invalid day tag")
	ErrScheduleTypeInvalid   = errors.New("invalid schedule type")
	ErrStartEndTimeRequired  = errors.New("start and end times required")
	ErrReadyByTimeRequired   = errors.New("ready by time required")
	ErrChargeLevelOutOfRange = errors.New("charge level must be between 0 and 100")
	ErrMileageOutOfRange     = errors.New("mileage must be between 0 and 250")
	ErrTimeFormatInvalid     = errors.New("time must be HH:MM")
)

var clockTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var scheduleValidationErrors = []error{
	ErrScheduleNameRequired,
	ErrScheduleDaysRequired,
	ErrScheduleDayInvalid,
	ErrScheduleTypeInvalid,
	ErrStartEndTimeRequired,
	ErrReadyByTimeRequired,
	ErrChargeLevelOutOfRange,
	ErrMileageOutOfRange,
	ErrTimeFormatInvalid,
}

func IsValidationError(err error) bool {
	for _, validationError := range scheduleValidationErrors {
		if errors.Is(err, validationError) {
			return true
		}
	}
	return false
}

// ScheduleDraft is an unpersisted candidate schedule. Fields outside the
// active variant may carry stale values; validation ignores them.
type ScheduleDraft struct {
	Name         string
	ScheduleType string
	Days         []string

	StartTime *string
	EndTime   *string

	ReadyByTime        *string
	DesiredChargeLevel *int

	ReadyByTimeMileage *string
	DesiredMileage     *int
}

// NormalizeScheduleDraft trims the name and dedupes day tags preserving
// first-occurrence order, then validates. First failure wins, in the order
// the schedule form checks: name, days, then the active variant's fields.
func NormalizeScheduleDraft(draft ScheduleDraft) (ScheduleDraft, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		return draft, ErrScheduleNameRequired
	}

	days, err := normalizeDayTags(draft.Days)
	if err != nil {
		return draft, err
	}
	draft.Days = days

	if err := validateVariantFields(draft); err != nil {
		return draft, err
	}
	return draft, nil
}

func normalizeDayTags(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, ErrScheduleDaysRequired
	}

	seen := make(map[string]struct{}, len(raw))
	days := make([]string, 0, len(raw))
	for _, day := range raw {
		if !models.IsValidDayTag(day) {
			return nil, ErrScheduleDayInvalid
		}
		if _, duplicate := seen[day]; duplicate {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	return days, nil
}

func validateVariantFields(draft ScheduleDraft) error {
	switch draft.ScheduleType {
	case models.ScheduleTypeTime:
		return validateTimeWindow(draft.StartTime, draft.EndTime)
	case models.ScheduleTypeCharge:
		return validateChargeTarget(draft.ReadyByTime, draft.DesiredChargeLevel)
	case models.ScheduleTypeMileage:
		return validateMileageTarget(draft.ReadyByTimeMileage, draft.DesiredMileage)
	default:
		return ErrScheduleTypeInvalid
	}
}

// validateTimeWindow requires both bounds but no ordering between them:
// overnight windows where the end precedes the start are allowed.
func validateTimeWindow(startTime *string, endTime *string) error {
	if !isPresent(startTime) || !isPresent(endTime) {
		return ErrStartEndTimeRequired
	}
	if !IsValidClockTime(*startTime) || !IsValidClockTime(*endTime) {
		return ErrTimeFormatInvalid
	}
	return nil
}

func validateChargeTarget(readyByTime *string, chargeLevel *int) error {
	if !isPresent(readyByTime) {
		return ErrReadyByTimeRequired
	}
	if !IsValidClockTime(*readyByTime) {
		return ErrTimeFormatInvalid
	}
	if chargeLevel == nil || *chargeLevel < models.MinChargeLevel || *chargeLevel > models.MaxChargeLevel {
		return ErrChargeLevelOutOfRange
	}
	return nil
}

func validateMileageTarget(readyByTime *string, mileage *int) error {
	if !isPresent(readyByTime) {
		return ErrReadyByTimeRequired
	}
	if !IsValidClockTime(*readyByTime) {
		return ErrTimeFormatInvalid
	}
	if mileage == nil || *mileage < models.MinMileage || *mileage > models.MaxMileage {
		return ErrMileageOutOfRange
	}
	return nil
}

// IsValidClockTime reports whether value is a 24-hour "HH:MM" string.
func IsValidClockTime(value string) bool {
	return clockTimePattern.MatchString(value)
}

func isPresent(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}
