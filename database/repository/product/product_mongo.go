package productRepo

import (
	"context"
	"fmt"
	"time"

	"voyago/database"
	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UnitFilter narrows an inventory query. Zero values mean "no filter".
type UnitFilter struct {
	CoachID       string
	OnlyAvailable bool
}

// ProductRepository defines read-only access to the travel product catalog.
type ProductRepository interface {
	GetByID(ctx context.Context, kind models.ProductKind, id string) (*models.Product, error)
	QueryUnits(ctx context.Context, kind models.ProductKind, id string, filter UnitFilter) ([]models.InventoryUnit, error)
}

// MongoProductRepo implements ProductRepository using MongoDB.
type MongoProductRepo struct {
	coll *mongo.Collection
}

// NewMongoProductRepo creates a new ProductRepository backed by MongoDB.
func NewMongoProductRepo() ProductRepository {
	repo := &MongoProductRepo{coll: database.Collection("products")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create product indexes: %v\n", err)
	}
	return repo
}

func (r *MongoProductRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "kind", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID fetches one product by kind and ID.
func (r *MongoProductRepo) GetByID(ctx context.Context, kind models.ProductKind, id string) (*models.Product, error) {
	var product models.Product
	err := r.coll.FindOne(ctx, bson.M{"id": id, "kind": kind}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch %s %s: %w", kind, id, err)
	}
	return &product, nil
}

// QueryUnits returns the product's inventory units matching the filter.
// Units are embedded in the product document; the filter is applied after
// the fetch.
func (r *MongoProductRepo) QueryUnits(ctx context.Context, kind models.ProductKind, id string, filter UnitFilter) ([]models.InventoryUnit, error) {
	product, err := r.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%s %s not found", kind, id)
	}

	units := make([]models.InventoryUnit, 0, len(product.Units))
	for _, u := range product.Units {
		if filter.OnlyAvailable && !u.Available {
			continue
		}
		if filter.CoachID != "" && u.CoachID != filter.CoachID {
			continue
		}
		units = append(units, u)
	}
	return units, nil
}
