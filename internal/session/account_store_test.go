package session

import (
	"errors"
	"testing"

	"github.com/voltshift/ampere/internal/services"
)

func TestAccountStoreRegisterLogsUserIn(t *testing.T) {
	accounts, _ := newTestStores(t)

	if err := accounts.Register("alice", "pw1", nil); err != nil {
		t.Fatalf("register alice: %v", err)
	}

	user, ok := accounts.CurrentUser()
	if !ok {
		t.Fatal("expected registration to log the user in")
	}
	if user.Username != "alice" {
		t.Fatalf("expected current user alice, got %q", user.Username)
	}
	if accounts.Err() != nil {
		t.Fatalf("expected clean error state, got %v", accounts.Err())
	}
}

func TestAccountStoreFailedLoginRecordsError(t *testing.T) {
	accounts, _ := newTestStores(t)
	loginTestUser(t, accounts)
	accounts.Logout()

	if err := accounts.Login("alice", "wrong"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, ok := accounts.CurrentUser(); ok {
		t.Fatal("expected no current user after failed login")
	}
	if !errors.Is(accounts.Err(), services.ErrInvalidCredentials) {
		t.Fatalf("expected recorded login error, got %v", accounts.Err())
	}
	if accounts.Loading() {
		t.Fatal("expected loading reset after failed login")
	}

	accounts.ClearErr()
	if accounts.Err() != nil {
		t.Fatal("expected error state cleared")
	}
}
