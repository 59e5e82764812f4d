package models

import "time"

// Category is the closed set of product categories the catalog accepts.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFashion     Category = "Fashion"
	CategorySupplies    Category = "Supplies"
	CategoryBeauty      Category = "Beauty"
	CategorySports      Category = "Sports"
	CategoryGroceries   Category = "Groceries"
)

// Valid reports whether c is one of the allowed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryFashion, CategorySupplies,
		CategoryBeauty, CategorySports, CategoryGroceries:
		return true
	}
	return false
}

// Product represents a catalog item.
type Product struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductTitle string    `json:"productTitle" validate:"required,min=2,max=200"`
	Description  string    `json:"description" validate:"required,max=2000"`
	Price        float64   `json:"price" validate:"required,gt=0"`
	ProductImg   string    `json:"productImg" validate:"required,url"`
	Category     Category  `json:"category" gorm:"type:varchar(32)" validate:"required,oneof=Electronics Fashion Supplies Beauty Sports Groceries"`
	Date         time.Time `json:"date"`
}
