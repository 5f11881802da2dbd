// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"encoding/json"
	"time"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table. Line items
// and the shipping address are frozen snapshots stored as JSONB; they are
// never queried relationally.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderNumber string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_orders_on_number"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_on_customer"`
	Email       string    `gorm:"type:varchar(255);not null"`
	Phone       string    `gorm:"type:varchar(32)"`

	Items           datatypes.JSON `gorm:"type:jsonb;not null"`
	ShippingAddress datatypes.JSON `gorm:"type:jsonb;not null"`

	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	VATRate        decimal.Decimal `gorm:"type:decimal(6,4);not null"`
	VATAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ShippingAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency       string          `gorm:"type:varchar(3);not null"`

	Status          string `gorm:"type:varchar(20);not null;index:idx_orders_on_status"`
	PaymentStatus   string `gorm:"type:varchar(20);not null"`
	PaymentIntentID string `gorm:"type:varchar(255)"`

	TrackingNumber  string `gorm:"type:varchar(100)"`
	TrackingCarrier string `gorm:"type:varchar(100)"`

	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the database model to a domain entity.
func (m *OrderModel) ToDomain() (*entity.Order, error) {
	var items []entity.LineItem
	if err := json.Unmarshal(m.Items, &items); err != nil {
		return nil, errors.Wrap(err, "unmarshal order items")
	}

	var address entity.Address
	if err := json.Unmarshal(m.ShippingAddress, &address); err != nil {
		return nil, errors.Wrap(err, "unmarshal shipping address")
	}

	return &entity.Order{
		ID:              m.ID,
		OrderNumber:     m.OrderNumber,
		CustomerID:      m.CustomerID,
		Email:           m.Email,
		Phone:           m.Phone,
		Items:           items,
		Subtotal:        m.Subtotal,
		VATRate:         m.VATRate,
		VATAmount:       m.VATAmount,
		ShippingAmount:  m.ShippingAmount,
		DiscountAmount:  m.DiscountAmount,
		Total:           m.Total,
		Currency:        m.Currency,
		Status:          entity.OrderStatus(m.Status),
		PaymentStatus:   entity.PaymentStatus(m.PaymentStatus),
		PaymentIntentID: m.PaymentIntentID,
		ShippingAddress: address,
		TrackingNumber:  m.TrackingNumber,
		TrackingCarrier: m.TrackingCarrier,
		ShippedAt:       m.ShippedAt,
		DeliveredAt:     m.DeliveredAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

// FromOrderDomain converts a domain entity to the database model.
func FromOrderDomain(order *entity.Order) (*OrderModel, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, errors.Wrap(err, "marshal order items")
	}

	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return nil, errors.Wrap(err, "marshal shipping address")
	}

	return &OrderModel{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerID:      order.CustomerID,
		Email:           order.Email,
		Phone:           order.Phone,
		Items:           datatypes.JSON(items),
		ShippingAddress: datatypes.JSON(address),
		Subtotal:        order.Subtotal,
		VATRate:         order.VATRate,
		VATAmount:       order.VATAmount,
		ShippingAmount:  order.ShippingAmount,
		DiscountAmount:  order.DiscountAmount,
		Total:           order.Total,
		Currency:        order.Currency,
		Status:          string(order.Status),
		PaymentStatus:   string(order.PaymentStatus),
		PaymentIntentID: order.PaymentIntentID,
		TrackingNumber:  order.TrackingNumber,
		TrackingCarrier: order.TrackingCarrier,
		ShippedAt:       order.ShippedAt,
		DeliveredAt:     order.DeliveredAt,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}, nil
}
