package order

import (
	"context"
	"fmt"

	"github.com/fstore/backoffice/internal/apiclient"
)

// API is the slice of the order endpoints the workflow controller needs.
// Satisfied by *Service; mocked in tests.
type API interface {
	GetAllOrders(ctx context.Context) ([]OrderRecord, error)
	UpdateOrder(ctx context.Context, id int, status Status) (OrderRecord, error)
}

// Service exposes the order endpoints of the storefront API.
type Service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) *Service {
	return &Service{api: api}
}

// AddOrder creates an order from an in-progress cart via CartsToOrder.
func (s *Service) AddOrder(ctx context.Context, carts []Cart, payment PaymentMethod, note string, user Customer) (OrderRecord, error) {
	draft := ToSend(CartsToOrder(carts, payment, note, user))

	var created OrderRecord
	if err := s.api.Post(ctx, "/api/orders", draft, &created); err != nil {
		return OrderRecord{}, fmt.Errorf("order: failed to create order: %w", err)
	}
	return created, nil
}

func (s *Service) GetAllOrders(ctx context.Context) ([]OrderRecord, error) {
	var records []OrderRecord
	if err := s.api.Get(ctx, "/api/orders", &records); err != nil {
		return nil, fmt.Errorf("order: failed to fetch orders: %w", err)
	}
	return records, nil
}

func (s *Service) GetOrder(ctx context.Context, id int) (OrderRecord, error) {
	var record OrderRecord
	if err := s.api.Get(ctx, fmt.Sprintf("/api/orders/%d", id), &record); err != nil {
		return OrderRecord{}, fmt.Errorf("order: failed to fetch order %d: %w", id, err)
	}
	return record, nil
}

// UpdateOrder requests a status transition. The backend owns the transition
// graph; the client just sends the target status and trusts the response.
func (s *Service) UpdateOrder(ctx context.Context, id int, status Status) (OrderRecord, error) {
	payload := struct {
		Status string `json:"status"`
	}{Status: string(status)}

	var updated OrderRecord
	if err := s.api.Put(ctx, fmt.Sprintf("/api/orders/%d", id), payload, &updated); err != nil {
		return OrderRecord{}, fmt.Errorf("order: failed to update order %d: %w", id, err)
	}
	return updated, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/api/orders/%d", id)); err != nil {
		return fmt.Errorf("order: failed to delete order %d: %w", id, err)
	}
	return nil
}

func (s *Service) SendFeedback(ctx context.Context, id int, feedback Feedback) (OrderRecord, error) {
	var updated OrderRecord
	if err := s.api.Post(ctx, fmt.Sprintf("/api/orders/%d/feedback", id), feedback, &updated); err != nil {
		return OrderRecord{}, fmt.Errorf("order: failed to send feedback for order %d: %w", id, err)
	}
	return updated, nil
}
