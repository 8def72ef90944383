// Package models defines the example shop schema shared by the guide's
// snippets, the tip implementations, and their tests. The schema is
// deliberately small: customers place orders, orders carry line items.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Order status values accepted by the check constraint.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusCancelled = "cancelled"
)

// Customer is an account that places orders.
type Customer struct {
	Name           string `gorm:"not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	CreatedAtEpoch int64  `gorm:"index:idx_customers_created,sort:desc;not null"`
}

func (Customer) TableName() string { return "customers" }

// BeforeCreate hook to ensure timestamps are set.
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAtEpoch == 0 {
		c.CreatedAtEpoch = time.Now().UnixMilli()
	}
	return nil
}

// Order is a purchase with its line items.
type Order struct {
	Reference      string      `gorm:"uniqueIndex;not null"`
	Status         string      `gorm:"type:text;check:status IN ('pending', 'paid', 'shipped', 'cancelled');default:'pending';index"`
	Customer       *Customer   `gorm:"foreignKey:CustomerID"`
	Items          []OrderItem `gorm:"foreignKey:OrderID"`
	ID             int64       `gorm:"primaryKey;autoIncrement"`
	CustomerID     int64       `gorm:"index:idx_orders_customer;not null"`
	Total          float64     `gorm:"type:real;default:0"`
	CreatedAtEpoch int64       `gorm:"index:idx_orders_created,sort:desc;not null"`
}

func (Order) TableName() string { return "orders" }

// BeforeCreate hook to ensure defaults are set.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.CreatedAtEpoch == 0 {
		o.CreatedAtEpoch = time.Now().UnixMilli()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	return nil
}

// OrderItem is a single line on an order.
type OrderItem struct {
	SKU       string  `gorm:"not null"`
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	OrderID   int64   `gorm:"index:idx_order_items_order;not null"`
	Quantity  int     `gorm:"default:1"`
	UnitPrice float64 `gorm:"type:real;default:0"`
}

func (OrderItem) TableName() string { return "order_items" }

// OrderSummary is the projection target for order listings: only the
// columns a list view needs. It is read-only and maps onto the orders table.
type OrderSummary struct {
	Reference string
	Status    string
	ID        int64
	Total     float64
}

func (OrderSummary) TableName() string { return "orders" }

// All returns the model set in AutoMigrate order (parents before children).
func All() []any {
	return []any{&Customer{}, &Order{}, &OrderItem{}}
}
