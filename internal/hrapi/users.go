package hrapi

import (
	"context"
	"fmt"

	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/gateway"
)

// UsersAPI covers the admin-only login account collection.
type UsersAPI struct {
	client *gateway.Client
}

// NewUsersAPI builds the wrapper.
func NewUsersAPI(client *gateway.Client) *UsersAPI {
	return &UsersAPI{client: client}
}

// AccountRequest is the create/update payload.
type AccountRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password,omitempty"`
	Role       string `json:"role"`
	EmployeeID *int   `json:"employee_id,omitempty"`
}

// List fetches all accounts.
func (u *UsersAPI) List(ctx context.Context) ([]domain.Account, error) {
	var out []domain.Account
	if err := u.client.Get(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one account.
func (u *UsersAPI) Get(ctx context.Context, id int) (*domain.Account, error) {
	var out domain.Account
	if err := u.client.Get(ctx, fmt.Sprintf("/users/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds an account.
func (u *UsersAPI) Create(ctx context.Context, req AccountRequest) (*domain.Account, error) {
	var out domain.Account
	if err := u.client.Post(ctx, "/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an account.
func (u *UsersAPI) Update(ctx context.Context, id int, req AccountRequest) (*domain.Account, error) {
	var out domain.Account
	if err := u.client.Put(ctx, fmt.Sprintf("/users/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an account.
func (u *UsersAPI) Delete(ctx context.Context, id int) error {
	return u.client.Delete(ctx, fmt.Sprintf("/users/%d", id))
}
