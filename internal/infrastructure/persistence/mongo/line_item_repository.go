package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/order"
)

type LineItemRepository struct {
	collection *mongo.Collection
}

func NewLineItemRepository(db *mongo.Database) *LineItemRepository {
	return &LineItemRepository{collection: db.Collection("orderItems")}
}

type lineItemDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID string             `bson:"product"`
	Quantity  int                `bson:"quantity"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (r *LineItemRepository) Insert(ctx context.Context, item *domain.LineItem) error {
	doc := lineItemDoc{
		ID:        primitive.NewObjectID(),
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert line item: %w", err)
	}

	item.ID = doc.ID.Hex()
	return nil
}

func (r *LineItemRepository) FindByID(ctx context.Context, id string) (*domain.LineItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc lineItemDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find line item: %w", err)
	}

	return &domain.LineItem{
		ID:        doc.ID.Hex(),
		ProductID: doc.ProductID,
		Quantity:  doc.Quantity,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// Delete is idempotent: a malformed or unknown id counts as already
// deleted so cascade retries always succeed.
func (r *LineItemRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete line item: %w", err)
	}
	return nil
}
