package client

import (
	"context"
	"log/slog"
	"net/http"

	"propmart/internal/domain/entity"
	"propmart/internal/store"
	"propmart/internal/transport"
)

const (
	msgFetchUsers   = "Failed to fetch users."
	msgFetchBrokers = "Failed to fetch brokers."
	msgUpdateUser   = "Failed to update user."
	msgDeleteUser   = "Failed to delete user."
)

// Users is the account slice used by the admin portal. List and
// ListBrokers both replace the same collection, matching how the admin
// views consume it.
type Users struct {
	res *store.Resource[entity.User]
	t   transport.Client
}

func newUsers(t transport.Client, logger *slog.Logger) *Users {
	return &Users{
		res: store.New[entity.User]("users", logger),
		t:   t,
	}
}

// UserInput is the typed mutation payload for accounts. Zero-valued
// fields are omitted from the request, so partial updates stay partial.
type UserInput struct {
	Name   string            `json:"name,omitempty"`
	Email  string            `json:"email,omitempty"`
	Agency string            `json:"agency,omitempty"`
	Status entity.UserStatus `json:"status,omitempty"`
	Role   entity.Role       `json:"role,omitempty"`
}

// List replaces the collection with every account.
func (u *Users) List(ctx context.Context) ([]entity.User, error) {
	return u.res.List(ctx, msgFetchUsers, func(ctx context.Context) ([]entity.User, error) {
		var items []entity.User
		err := u.t.Do(ctx, transport.Request{
			Method: http.MethodGet,
			Path:   "/users",
		}, &items)

		return items, err
	})
}

// ListBrokers replaces the collection with broker accounts only.
func (u *Users) ListBrokers(ctx context.Context) ([]entity.User, error) {
	return u.res.List(ctx, msgFetchBrokers, func(ctx context.Context) ([]entity.User, error) {
		var items []entity.User
		err := u.t.Do(ctx, transport.Request{
			Method: http.MethodGet,
			Path:   "/users/brokers",
		}, &items)

		return items, err
	})
}

// Update submits changed fields and replaces the matching account in
// place with the server-returned one.
func (u *Users) Update(ctx context.Context, id string, input UserInput) (entity.User, error) {
	return u.res.Update(ctx, id, msgUpdateUser, func(ctx context.Context) (entity.User, error) {
		var item entity.User
		err := u.t.Do(ctx, transport.Request{
			Method: http.MethodPut,
			Path:   "/users/" + id,
			Body:   input,
		}, &item)

		return item, err
	})
}

// Delete removes an account.
func (u *Users) Delete(ctx context.Context, id string) error {
	return u.res.Delete(ctx, id, msgDeleteUser, func(ctx context.Context) error {
		return u.t.Do(ctx, transport.Request{
			Method: http.MethodDelete,
			Path:   "/users/" + id,
		}, nil)
	})
}

// Items returns a copy of the cached accounts.
func (u *Users) Items() []entity.User {
	return u.res.Items()
}

// Status returns the slice's shared request status.
func (u *Users) Status() store.Status {
	return u.res.Status()
}

// Subscribe registers a render callback.
func (u *Users) Subscribe(fn func(store.Snapshot[entity.User])) (cancel func()) {
	return u.res.Subscribe(fn)
}

// Reset returns the status to Idle, keeping cached data.
func (u *Users) Reset() {
	u.res.Reset()
}
