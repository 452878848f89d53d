// Package session holds the per-flow in-memory state the screens drive: the
// current authenticated user and the schedule snapshot. One instance serves
// one user flow at a time; the stores are not reentrancy-safe and callers are
// expected to disable the triggering control while Loading reports true
// rather than issue overlapping operations.
package session

import (
	"errors"

	"github.com/voltshift/ampere/internal/models"
	"github.com/voltshift/ampere/internal/services"
)

var ErrNotAuthenticated = errors.New("user not authenticated")

type AccountStore struct {
	auth *services.AuthService

	user    *models.Account
	loading bool
	lastErr error
}

func NewAccountStore(auth *services.AuthService) *AccountStore {
	return &AccountStore{auth: auth}
}

// Register creates the account and, on success, logs the new user in.
func (store *AccountStore) Register(username string, password string, email *string) error {
	store.loading, store.lastErr = true, nil

	account, err := store.auth.Register(username, password, email)
	if err != nil {
		store.loading, store.lastErr = false, err
		return err
	}

	store.user, store.loading = &account, false
	return nil
}

func (store *AccountStore) Login(username string, password string) error {
	store.loading, store.lastErr = true, nil

	account, err := store.auth.Login(username, password)
	if err != nil {
		store.loading, store.lastErr = false, err
		return err
	}

	store.user, store.loading = &account, false
	return nil
}

// Logout clears the current user; storage is untouched.
func (store *AccountStore) Logout() {
	store.user = nil
}

func (store *AccountStore) CurrentUser() (models.Account, bool) {
	if store.user == nil {
		return models.Account{}, false
	}
	return *store.user, true
}

func (store *AccountStore) Loading() bool {
	return store.loading
}

func (store *AccountStore) Err() error {
	return store.lastErr
}

func (store *AccountStore) ClearErr() {
	store.lastErr = nil
}
