package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sale records a single sale. Total is always Qty * Rate at write time.
type Sale struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ProductName string             `json:"product_name" bson:"product_name"`
	Qty         float64            `json:"qty" bson:"qty"`
	Rate        float64            `json:"rate" bson:"rate"`
	Total       float64            `json:"total" bson:"total"`
	UserID      string             `json:"userId" bson:"userId"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// NewSale builds a sale with its total computed from qty and rate
func NewSale(productName string, qty, rate float64, userID string, now time.Time) *Sale {
	return &Sale{
		ProductName: productName,
		Qty:         qty,
		Rate:        rate,
		Total:       SaleTotal(qty, rate),
		UserID:      userID,
		CreatedAt:   now,
	}
}

// SaleTotal is the only place a sale total is derived
func SaleTotal(qty, rate float64) float64 {
	return qty * rate
}

// SaleUpdate is the overwrite applied by update-sale
type SaleUpdate struct {
	ProductName string
	Qty         float64
	Rate        float64
	Total       float64
}

// NewSaleUpdate builds an update whose total is recomputed from qty and rate
func NewSaleUpdate(productName string, qty, rate float64) SaleUpdate {
	return SaleUpdate{
		ProductName: productName,
		Qty:         qty,
		Rate:        rate,
		Total:       SaleTotal(qty, rate),
	}
}

// SaveSaleRequest is the body of POST /save-sale
type SaveSaleRequest struct {
	ProductName string `json:"product_name" form:"product_name"`
	Quantity    Number `json:"quantity" form:"quantity"`
	Price       Number `json:"price" form:"price"`
	UserID      string `json:"userId" form:"userId"`
}

// UpdateSaleRequest is the body of POST /update-sale
type UpdateSaleRequest struct {
	ID          string `json:"id" form:"id" validate:"required"`
	ProductName string `json:"product_name" form:"product_name"`
	Qty         Number `json:"qty" form:"qty"`
	Rate        Number `json:"rate" form:"rate"`
}

// DeleteSaleRequest is the body of POST /delete-sale
type DeleteSaleRequest struct {
	ID string `json:"id" form:"id" validate:"required"`
}
