package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/HSouheill/salesapp_backend/models"
)

// Collection names
const (
	UsersCollection    = "users"
	ProductsCollection = "products"
	SalesCollection    = "sales"
)

// UserRepository persists users. Lookups that match nothing return models.ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	ExistsByPhoneOrEmail(ctx context.Context, phone, email string) (bool, error)
	FindOne(ctx context.Context, filter models.UserFilter) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByRole(ctx context.Context, role models.Role) ([]models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update models.ProfileUpdate) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, password string) error
}

// ProductRepository persists products
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SaleRepository persists sales. List returns the newest sale first.
type SaleRepository interface {
	Create(ctx context.Context, sale *models.Sale) error
	List(ctx context.Context) ([]models.Sale, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.SaleUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Store bundles the repositories behind one explicitly managed store client
type Store struct {
	Users    UserRepository
	Products ProductRepository
	Sales    SaleRepository

	client *mongo.Client
}

// NewMongoStore wires the Mongo repositories onto db. The store owns client
// and disconnects it on Close.
func NewMongoStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		Users:    NewUserRepository(db),
		Products: NewProductRepository(db),
		Sales:    NewSaleRepository(db),
		client:   client,
	}
}

// NewMemoryStore returns a store kept entirely in process memory
func NewMemoryStore() *Store {
	return &Store{
		Users:    NewMemoryUserRepository(),
		Products: NewMemoryProductRepository(),
		Sales:    NewMemorySaleRepository(),
	}
}

// Ping checks that the backing store answers
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// Close releases the store client
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
