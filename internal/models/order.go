package models

import "time"

// OrderStatus is the lifecycle state of an order. Orders always start at
// StatusPending; any state may move to any other (the dashboard imposes no
// workflow ordering).
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the four order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order represents a placed order as stored. UserID and ProductID are weak
// references: plain id strings with no foreign-key constraint behind them.
type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string      `json:"userID" gorm:"index;type:varchar(36)"`
	ProductID string      `json:"productID" gorm:"index;type:varchar(36)"`
	Number    string      `json:"number"`
	Address   string      `json:"address"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(16);default:Pending"`
	Date      time.Time   `json:"date"`
}

// OrderView is the denormalized read shape for the admin list and the order
// detail screen: the order joined with its buyer and product. Orders whose
// referenced user or product no longer exists are excluded from this view.
type OrderView struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userID"`
	ProductID    string      `json:"productID"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	ProductTitle string      `json:"productTitle"`
	Description  string      `json:"description"`
	Price        float64     `json:"price"`
	ProductImg   string      `json:"productImg"`
	Category     Category    `json:"category"`
	Number       string      `json:"number"`
	Address      string      `json:"address"`
	Status       OrderStatus `json:"status"`
	Date         time.Time   `json:"date"`
}

// UserOrderView is the buyer-facing read shape: one user's orders joined
// with product details only. The buyer fields are omitted.
type UserOrderView struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userID"`
	ProductID    string      `json:"productID"`
	ProductTitle string      `json:"productTitle"`
	Description  string      `json:"description"`
	Price        float64     `json:"price"`
	ProductImg   string      `json:"productImg"`
	Category     Category    `json:"category"`
	Number       string      `json:"number"`
	Address      string      `json:"address"`
	Status       OrderStatus `json:"status"`
	Date         time.Time   `json:"date"`
}
