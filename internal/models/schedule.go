package models

import "time"

const (
	ScheduleTypeTime    = "time"
	ScheduleTypeCharge  = "charge"
	ScheduleTypeMileage = "mileage"
)

const (
	DayMon = "mon"
	DayTue = "tue"
	DayWed = "wed"
	DayThu = "thu"
	DayFri = "fri"
	DaySat = "sat"
	DaySun = "sun"
)

const (
	MaxSchedulesPerUser = 10

	MinChargeLevel = 0
	MaxChargeLevel = 100
	MinMileage     = 0
	MaxMileage     = 250
)

// WeekDays lists the valid day tags in display order.
var WeekDays = []string{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun}

// Schedule is one named charging rule owned by a user. Exactly one variant's
// field group is active, selected by ScheduleType; the other groups may hold
// stale values and are ignored.
type Schedule struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	UserID       uint     `gorm:"not null;index" json:"user_id"`
	Name         string   `gorm:"not null" json:"name"`
	ScheduleType string   `gorm:"not null" json:"schedule_type"`
	Days         []string `gorm:"serializer:json;not null" json:"days"`

	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`

	ReadyByTime        *string `json:"ready_by_time"`
	DesiredChargeLevel *int    `json:"desired_charge_level"`

	ReadyByTimeMileage *string `json:"ready_by_time_mileage"`
	DesiredMileage     *int    `json:"desired_mileage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidScheduleType(scheduleType string) bool {
	switch scheduleType {
	case ScheduleTypeTime, ScheduleTypeCharge, ScheduleTypeMileage:
		return true
	default:
		return false
	}
}

func IsValidDayTag(day string) bool {
	switch day {
	case DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun:
		return true
	default:
		return false
	}
}
