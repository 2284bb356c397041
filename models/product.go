package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is an inventory item. CreatedBy is not checked against users.
type Product struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Price     float64            `json:"price" bson:"price"`
	Quantity  float64            `json:"quantity" bson:"quantity"`
	CreatedBy string             `json:"createdBy" bson:"createdBy"`
}

// AddProductRequest is the body of POST /add-product
type AddProductRequest struct {
	Role      Role   `json:"role" form:"role"`
	Name      string `json:"name" form:"name"`
	Price     Number `json:"price" form:"price"`
	Quantity  Number `json:"quantity" form:"quantity"`
	CreatedBy string `json:"createdBy" form:"createdBy"`
}

// Product converts the request into the stored document
func (r AddProductRequest) Product() *Product {
	return &Product{
		Name:      r.Name,
		Price:     r.Price.Float64(),
		Quantity:  r.Quantity.Float64(),
		CreatedBy: r.CreatedBy,
	}
}

// DeleteProductRequest is the body of POST /delete-product
type DeleteProductRequest struct {
	Role Role   `json:"role" form:"role"`
	ID   string `json:"id" form:"id"`
}
