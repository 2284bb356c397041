package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HSouheill/salesapp_backend/models"
)

type MongoSaleRepository struct {
	collection *mongo.Collection
}

func NewSaleRepository(db *mongo.Database) *MongoSaleRepository {
	return &MongoSaleRepository{
		collection: db.Collection(SalesCollection),
	}
}

func (r *MongoSaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	sale.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, sale); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// List returns every sale, newest first. ObjectIDs grow with insertion time.
func (r *MongoSaleRepository) List(ctx context.Context) ([]models.Sale, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	defer cursor.Close(ctx)

	sales := make([]models.Sale, 0)
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return sales, nil
}

func (r *MongoSaleRepository) Update(ctx context.Context, id primitive.ObjectID, update models.SaleUpdate) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"product_name": update.ProductName,
			"qty":          update.Qty,
			"rate":         update.Rate,
			"total":        update.Total,
		},
	})
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

func (r *MongoSaleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}
