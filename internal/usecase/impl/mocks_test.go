package impl

import (
	"context"

	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// mockCartStorage implements repository.CartStorage for testing.
type mockCartStorage struct {
	carts map[uuid.UUID][]entity.LineItem

	FindErr   error
	SaveErr   error
	DeleteErr error

	SaveCalls   int
	DeleteCalls int
}

func newMockCartStorage() *mockCartStorage {
	return &mockCartStorage{carts: make(map[uuid.UUID][]entity.LineItem)}
}

func (m *mockCartStorage) FindCart(_ context.Context, customerID uuid.UUID) ([]entity.LineItem, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	items, ok := m.carts[customerID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	return append([]entity.LineItem(nil), items...), nil
}

func (m *mockCartStorage) SaveCart(_ context.Context, customerID uuid.UUID, items []entity.LineItem) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.carts[customerID] = append([]entity.LineItem(nil), items...)

	return nil
}

func (m *mockCartStorage) DeleteCart(_ context.Context, customerID uuid.UUID) error {
	m.DeleteCalls++
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.carts, customerID)

	return nil
}

// mockOrderRepository implements repository.OrderRepository for testing.
type mockOrderRepository struct {
	orders map[uuid.UUID]*entity.Order
	events map[uuid.UUID][]entity.TrackingEvent

	CreateErr      error
	FindErr        error
	ListErr        error
	UpdateErr      error
	AppendEventErr error
	FindEventsErr  error

	CreatedOrder  *entity.Order
	UpdatedStatus entity.OrderStatus
	UpdatedTs     repository.StatusTimestamps
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{
		orders: make(map[uuid.UUID]*entity.Order),
		events: make(map[uuid.UUID][]entity.TrackingEvent),
	}
}

func (m *mockOrderRepository) CreateOrder(_ context.Context, order *entity.Order) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.CreatedOrder = order
	clone := *order
	m.orders[order.ID] = &clone

	return nil
}

func (m *mockOrderRepository) FindOrderByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	clone := *order

	return &clone, nil
}

func (m *mockOrderRepository) FindOrdersByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var result []*entity.Order
	for _, order := range m.orders {
		if order.CustomerID == customerID {
			clone := *order
			result = append(result, &clone)
		}
	}

	return result, nil
}

func (m *mockOrderRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus, ts repository.StatusTimestamps) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	order, ok := m.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status
	if ts.ShippedAt != nil {
		order.ShippedAt = ts.ShippedAt
	}
	if ts.DeliveredAt != nil {
		order.DeliveredAt = ts.DeliveredAt
	}
	m.UpdatedStatus = status
	m.UpdatedTs = ts

	return nil
}

func (m *mockOrderRepository) UpdatePaymentStatus(_ context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	order, ok := m.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.PaymentStatus = status

	return nil
}

func (m *mockOrderRepository) AppendTrackingEvent(_ context.Context, event *entity.TrackingEvent) error {
	if m.AppendEventErr != nil {
		return m.AppendEventErr
	}
	m.events[event.OrderID] = append(m.events[event.OrderID], *event)

	return nil
}

func (m *mockOrderRepository) FindTrackingEvents(_ context.Context, orderID uuid.UUID) ([]entity.TrackingEvent, error) {
	if m.FindEventsErr != nil {
		return nil, m.FindEventsErr
	}

	return append([]entity.TrackingEvent(nil), m.events[orderID]...), nil
}

// mockIdentityService implements service.IdentityService for testing.
type mockIdentityService struct {
	Identity *entity.Identity
	Err      error
}

func (m *mockIdentityService) CurrentIdentity(_ context.Context) (*entity.Identity, error) {
	return m.Identity, m.Err
}

// mockPaymentService implements service.PaymentService for testing.
type mockPaymentService struct {
	ClientSecret string
	Err          error

	Amount   decimal.Decimal
	Currency string
	Metadata map[string]string
}

func (m *mockPaymentService) CreatePaymentIntent(_ context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (string, error) {
	m.Amount = amount
	m.Currency = currency
	m.Metadata = metadata
	if m.Err != nil {
		return "", m.Err
	}

	return m.ClientSecret, nil
}
