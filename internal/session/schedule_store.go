package session

import (
	"github.com/voltshift/ampere/internal/models"
	"github.com/voltshift/ampere/internal/services"
)

// ScheduleStore keeps the current user's schedules as a full snapshot that is
// replaced wholesale by re-querying after every successful mutation. Failure
// handling is deliberately asymmetric: Add propagates its error so the caller
// never treats a failed save as success, while Edit and Remove record the
// error and let the caller flow continue.
type ScheduleStore struct {
	accounts  *AccountStore
	schedules *services.ScheduleService

	snapshot []models.Schedule
	loading  bool
	lastErr  error
}

func NewScheduleStore(accounts *AccountStore, schedules *services.ScheduleService) *ScheduleStore {
	return &ScheduleStore{accounts: accounts, schedules: schedules}
}

// Load refreshes the snapshot. A storage failure degrades to an empty
// snapshot plus error state; Load itself never fails once a user is present.
func (store *ScheduleStore) Load() error {
	user, ok := store.accounts.CurrentUser()
	if !ok {
		return ErrNotAuthenticated
	}

	store.loading, store.lastErr = true, nil
	schedules, err := store.schedules.ListForUser(user.ID)
	if err != nil {
		store.snapshot, store.loading, store.lastErr = nil, false, err
		return nil
	}

	store.snapshot, store.loading = schedules, false
	return nil
}

// Add gates on the snapshot count before delegating; the service re-counts
// against the database, so both checks must pass.
func (store *ScheduleStore) Add(draft services.ScheduleDraft) (uint, error) {
	user, ok := store.accounts.CurrentUser()
	if !ok {
		return 0, ErrNotAuthenticated
	}
	if len(store.snapshot) >= models.MaxSchedulesPerUser {
		store.lastErr = services.ErrScheduleLimitReached
		return 0, services.ErrScheduleLimitReached
	}

	store.loading, store.lastErr = true, nil
	scheduleID, err := store.schedules.Create(user.ID, draft)
	if err != nil {
		store.loading, store.lastErr = false, err
		return 0, err
	}

	_ = store.Load()
	return scheduleID, nil
}

// Edit records a failure instead of returning it; the last error stays
// observable through Err.
func (store *ScheduleStore) Edit(scheduleID uint, draft services.ScheduleDraft) error {
	if _, ok := store.accounts.CurrentUser(); !ok {
		return ErrNotAuthenticated
	}

	store.loading, store.lastErr = true, nil
	if err := store.schedules.Update(scheduleID, draft); err != nil {
		store.loading, store.lastErr = false, err
		return nil
	}

	return store.Load()
}

// Remove records a failure instead of returning it, like Edit.
func (store *ScheduleStore) Remove(scheduleID uint) error {
	if _, ok := store.accounts.CurrentUser(); !ok {
		return ErrNotAuthenticated
	}

	store.loading, store.lastErr = true, nil
	if err := store.schedules.Delete(scheduleID); err != nil {
		store.loading, store.lastErr = false, err
		return nil
	}

	return store.Load()
}

func (store *ScheduleStore) Schedules() []models.Schedule {
	return store.snapshot
}

func (store *ScheduleStore) Loading() bool {
	return store.loading
}

func (store *ScheduleStore) Err() error {
	return store.lastErr
}

func (store *ScheduleStore) ClearErr() {
	store.lastErr = nil
}
