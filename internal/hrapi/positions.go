package hrapi

import (
	"context"
	"fmt"

	"github.com/spec-kit/hr-console/internal/domain"
	"github.com/spec-kit/hr-console/internal/gateway"
)

// PositionsAPI covers the positions collection.
type PositionsAPI struct {
	client *gateway.Client
}

// NewPositionsAPI builds the wrapper.
func NewPositionsAPI(client *gateway.Client) *PositionsAPI {
	return &PositionsAPI{client: client}
}

// PositionRequest is the create/update payload.
type PositionRequest struct {
	Title        string `json:"title"`
	DepartmentID *int   `json:"department_id,omitempty"`
}

// List fetches all positions.
func (p *PositionsAPI) List(ctx context.Context) ([]domain.Position, error) {
	var out []domain.Position
	if err := p.client.Get(ctx, "/positions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one position.
func (p *PositionsAPI) Get(ctx context.Context, id int) (*domain.Position, error) {
	var out domain.Position
	if err := p.client.Get(ctx, fmt.Sprintf("/positions/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a position.
func (p *PositionsAPI) Create(ctx context.Context, req PositionRequest) (*domain.Position, error) {
	var out domain.Position
	if err := p.client.Post(ctx, "/positions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a position.
func (p *PositionsAPI) Update(ctx context.Context, id int, req PositionRequest) (*domain.Position, error) {
	var out domain.Position
	if err := p.client.Put(ctx, fmt.Sprintf("/positions/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a position.
func (p *PositionsAPI) Delete(ctx context.Context, id int) error {
	return p.client.Delete(ctx, fmt.Sprintf("/positions/%d", id))
}
