package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Schedules *ScheduleRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Schedules: NewScheduleRepository(database),
	}
}
