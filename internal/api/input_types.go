package api

import "github.com/voltshift/ampere/internal/services"

type credentialsInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Email    string `json:"email" form:"email"`
}

type schedulePayload struct {
	Name         string   `json:"name" form:"name"`
	ScheduleType string   `json:"schedule_type" form:"schedule_type"`
	Days         []string `json:"days" form:"days"`

	StartTime *string `json:"start_time" form:"start_time"`
	EndTime   *string `json:"end_time" form:"end_time"`

	ReadyByTime        *string `json:"ready_by_time" form:"ready_by_time"`
	DesiredChargeLevel *int    `json:"desired_charge_level" form:"desired_charge_level"`

	ReadyByTimeMileage *string `json:"ready_by_time_mileage" form:"ready_by_time_mileage"`
	DesiredMileage     *int    `json:"desired_mileage" form:"desired_mileage"`
}

func (payload schedulePayload) toDraft() services.ScheduleDraft {
	return services.ScheduleDraft{
		Name:               payload.Name,
		ScheduleType:       payload.ScheduleType,
		Days:               payload.Days,
		StartTime:          payload.StartTime,
		EndTime:            payload.EndTime,
		ReadyByTime:        payload.ReadyByTime,
		DesiredChargeLevel: payload.DesiredChargeLevel,
		ReadyByTimeMileage: payload.ReadyByTimeMileage,
		DesiredMileage:     payload.DesiredMileage,
	}
}
