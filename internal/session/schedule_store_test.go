package session

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/voltshift/ampere/internal/db"
	"github.com/voltshift/ampere/internal/models"
	"github.com/voltshift/ampere/internal/services"
)

func newTestStores(t *testing.T) (*AccountStore, *ScheduleStore) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "ampere-session-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repositories := db.NewRepositories(database)
	accounts := NewAccountStore(services.NewAuthService(repositories.Users))
	schedules := NewScheduleStore(accounts, services.NewScheduleService(repositories.Schedules))
	return accounts, schedules
}

func loginTestUser(t *testing.T, accounts *AccountStore) {
	t.Helper()
	if err := accounts.Register("alice", "pw1", nil); err != nil {
		t.Fatalf("register alice: %v", err)
	}
}

func timeDraft(name string) services.ScheduleDraft {
	start, end := "22:00", "06:00"
	return services.ScheduleDraft{
		Name:         name,
		ScheduleType: models.ScheduleTypeTime,
		Days:         []string{models.DayMon},
		StartTime:    &start,
		EndTime:      &end,
	}
}

func TestScheduleStoreRequiresAuthenticatedUser(t *testing.T) {
	_, schedules := newTestStores(t)

	if err := schedules.Load(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated from Load, got %v", err)
	}
	if _, err := schedules.Add(timeDraft("first")); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated from Add, got %v", err)
	}
	if err := schedules.Edit(1, timeDraft("first")); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated from Edit, got %v", err)
	}
	if err := schedules.Remove(1); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated from Remove, got %v", err)
	}
}

func TestScheduleStoreAddReloadsSnapshot(t *testing.T) {
	accounts, schedules := newTestStores(t)
	loginTestUser(t, accounts)

	if err := schedules.Load(); err != nil {
		t.Fatalf("initial load: %v", err)
	}
	if len(schedules.Schedules()) != 0 {
		t.Fatalf("expected empty snapshot, got %d", len(schedules.Schedules()))
	}

	scheduleID, err := schedules.Add(timeDraft("first"))
	if err != nil {
		t.Fatalf("add schedule: %v", err)
	}
	if scheduleID == 0 {
		t.Fatal("expected a non-zero schedule id")
	}

	snapshot := schedules.Schedules()
	if len(snapshot) != 1 {
		t.Fatalf("expected snapshot reloaded after add, got %d rows", len(snapshot))
	}
	if snapshot[0].Name != "first" {
		t.Fatalf("expected reloaded schedule, got %q", snapshot[0].Name)
	}
	if schedules.Loading() {
		t.Fatal("expected loading to settle after add")
	}
	if schedules.Err() != nil {
		t.Fatalf("expected clean error state, got %v", schedules.Err())
	}
}

func TestScheduleStoreAddPropagatesFailure(t *testing.T) {
	accounts, schedules := newTestStores(t)
	loginTestUser(t, accounts)

	invalid := timeDraft("")
	if _, err := schedules.Add(invalid); !errors.Is(err, services.ErrScheduleNameRequired) {
		t.Fatalf("expected create failure to propagate, got %v", err)
	}
	if schedules.Err() == nil {
		t.Fatal("expected failure recorded on the store")
	}
	if schedules.Loading() {
		t.Fatal("expected loading reset after failure")
	}
}

func TestScheduleStoreSnapshotGateEnforcesLimit(t *testing.T) {
	accounts, schedules := newTestStores(t)
	loginTestUser(t, accounts)

	for index := 0; index < models.MaxSchedulesPerUser; index++ {
		if _, err := schedules.Add(timeDraft(fmt.Sprintf("slot %d", index))); err != nil {
			t.Fatalf("add schedule %d: %v", index, err)
		}
	}

	if _, err := schedules.Add(timeDraft("one too many")); !errors.Is(err, services.ErrScheduleLimitReached) {
		t.Fatalf("expected ErrScheduleLimitReached, got %v", err)
	}
	if len(schedules.Schedules()) != models.MaxSchedulesPerUser {
		t.Fatalf("expected snapshot to stay at %d, got %d", models.MaxSchedulesPerUser, len(schedules.Schedules()))
	}
}

func TestScheduleStoreEditSwallowsFailure(t *testing.T) {
	accounts, schedules := newTestStores(t)
	loginTestUser(t, accounts)

	if _, err := schedules.Add(timeDraft("first")); err != nil {
		t.Fatalf("add schedule: %v", err)
	}
	scheduleID := schedules.Schedules()[0].ID

	invalid := timeDraft("renamed")
	invalid.StartTime = nil

	// Edit failures are recorded, not returned; the caller flow continues.
	if err := schedules.Edit(scheduleID, invalid); err != nil {
		t.Fatalf("expected edit failure to be swallowed, got %v", err)
	}
	if !errors.Is(schedules.Err(), services.ErrStartEndTimeRequired) {
		t.Fatalf("expected recorded validation error, got %v", schedules.Err())
	}

	schedules.ClearErr()
	if err := schedules.Edit(scheduleID, timeDraft("renamed")); err != nil {
		t.Fatalf("edit schedule: %v", err)
	}
	if schedules.Err() != nil {
		t.Fatalf("expected clean error state, got %v", schedules.Err())
	}
	if schedules.Schedules()[0].Name != "renamed" {
		t.Fatalf("expected snapshot reloaded with new name, got %q", schedules.Schedules()[0].Name)
	}
}

func TestScheduleStoreRemoveMissingIDIsNoOp(t *testing.T) {
	accounts, schedules := newTestStores(t)
	loginTestUser(t, accounts)

	if _, err := schedules.Add(timeDraft("keeper")); err != nil {
		t.Fatalf("add schedule: %v", err)
	}

	if err := schedules.Remove(9999); err != nil {
		t.Fatalf("expected remove of missing id to be a no-op, got %v", err)
	}
	if schedules.Err() != nil {
		t.Fatalf("expected no recorded error, got %v", schedules.Err())
	}
	if len(schedules.Schedules()) != 1 {
		t.Fatalf("expected existing schedule untouched, got %d rows", len(schedules.Schedules()))
	}

	if err := schedules.Remove(schedules.Schedules()[0].ID); err != nil {
		t.Fatalf("remove schedule: %v", err)
	}
	if len(schedules.Schedules()) != 0 {
		t.Fatalf("expected empty snapshot after remove, got %d rows", len(schedules.Schedules()))
	}
}

func TestAccountStoreLogoutClearsUserOnly(t *testing.T) {
	accounts, schedules := newTestStores(t)
	loginTestUser(t, accounts)

	if _, err := schedules.Add(timeDraft("survives logout")); err != nil {
		t.Fatalf("add schedule: %v", err)
	}

	accounts.Logout()
	if _, ok := accounts.CurrentUser(); ok {
		t.Fatal("expected no current user after logout")
	}

	// Logging back in sees the persisted schedule: logout touched no storage.
	if err := accounts.Login("alice", "pw1"); err != nil {
		t.Fatalf("login after logout: %v", err)
	}
	if err := schedules.Load(); err != nil {
		t.Fatalf("reload after login: %v", err)
	}
	if len(schedules.Schedules()) != 1 {
		t.Fatalf("expected schedule to survive logout, got %d rows", len(schedules.Schedules()))
	}
}
