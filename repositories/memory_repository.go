package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HSouheill/salesapp_backend/models"
)

// MemoryUserRepository keeps users in insertion order
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = primitive.NewObjectID()
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepository) ExistsByPhoneOrEmail(_ context.Context, phone, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if (email != "" && u.Email == email) || (phone != "" && u.Phone == phone) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryUserRepository) FindOne(_ context.Context, filter models.UserFilter) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if filter.Matches(u) {
			found := u
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		found := r.users[i]
		return &found, nil
	}
	return nil, models.ErrNotFound
}

func (r *MemoryUserRepository) FindByRole(_ context.Context, role models.Role) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0)
	for _, u := range r.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *MemoryUserRepository) UpdateProfile(_ context.Context, id primitive.ObjectID, update models.ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.users[i].Name = update.Name
		r.users[i].Phone = update.Phone
		r.users[i].Email = update.Email
		r.users[i].Organisation = update.Organisation
	}
	return nil
}

func (r *MemoryUserRepository) UpdatePassword(_ context.Context, id primitive.ObjectID, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.users[i].Password = password
	}
	return nil
}

func (r *MemoryUserRepository) indexOf(id primitive.ObjectID) int {
	for i, u := range r.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// MemoryProductRepository keeps products in insertion order
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

func (r *MemoryProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = primitive.NewObjectID()
	r.products = append(r.products, *product)
	return nil
}

func (r *MemoryProductRepository) List(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

func (r *MemoryProductRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			break
		}
	}
	return nil
}

// MemorySaleRepository keeps sales in insertion order and lists them reversed
type MemorySaleRepository struct {
	mu    sync.RWMutex
	sales []models.Sale
}

func NewMemorySaleRepository() *MemorySaleRepository {
	return &MemorySaleRepository{}
}

func (r *MemorySaleRepository) Create(_ context.Context, sale *models.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sale.ID = primitive.NewObjectID()
	r.sales = append(r.sales, *sale)
	return nil
}

func (r *MemorySaleRepository) List(_ context.Context) ([]models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sales := make([]models.Sale, 0, len(r.sales))
	for i := len(r.sales) - 1; i >= 0; i-- {
		sales = append(sales, r.sales[i])
	}
	return sales, nil
}

func (r *MemorySaleRepository) Update(_ context.Context, id primitive.ObjectID, update models.SaleUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sales {
		if r.sales[i].ID == id {
			r.sales[i].ProductName = update.ProductName
			r.sales[i].Qty = update.Qty
			r.sales[i].Rate = update.Rate
			r.sales[i].Total = update.Total
			break
		}
	}
	return nil
}

func (r *MemorySaleRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.sales {
		if s.ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			break
		}
	}
	return nil
}
