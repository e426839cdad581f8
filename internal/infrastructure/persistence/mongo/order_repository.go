package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/order"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{collection: db.Collection("orders")}
}

type orderDoc struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty"`
	ItemIDs          []string             `bson:"orderItems"`
	ShippingAddress1 string               `bson:"shippingAddress1"`
	ShippingAddress2 string               `bson:"shippingAddress2,omitempty"`
	City             string               `bson:"city"`
	Zip              string               `bson:"zip"`
	Country          string               `bson:"country"`
	Phone            string               `bson:"phone"`
	Status           string               `bson:"status"`
	TotalPrice       primitive.Decimal128 `bson:"totalPrice"`
	UserID           string               `bson:"user"`
	DateOrdered      time.Time            `bson:"dateOrdered"`
}

func toOrderDoc(o *domain.Order) (*orderDoc, error) {
	total, err := toDecimal128(o.TotalPrice)
	if err != nil {
		return nil, err
	}

	doc := &orderDoc{
		ItemIDs:          o.ItemIDs,
		ShippingAddress1: o.Shipping.Address1,
		ShippingAddress2: o.Shipping.Address2,
		City:             o.Shipping.City,
		Zip:              o.Shipping.Zip,
		Country:          o.Shipping.Country,
		Phone:            o.Shipping.Phone,
		Status:           o.Status.String(),
		TotalPrice:       total,
		UserID:           o.UserID,
		DateOrdered:      o.DateOrdered,
	}
	if o.ID != "" {
		oid, err := primitive.ObjectIDFromHex(o.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid order id %s: %w", o.ID, err)
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d *orderDoc) toDomain() (*domain.Order, error) {
	total, err := fromDecimal128(d.TotalPrice)
	if err != nil {
		return nil, err
	}

	return &domain.Order{
		ID:      d.ID.Hex(),
		ItemIDs: d.ItemIDs,
		Shipping: domain.ShippingAddress{
			Address1: d.ShippingAddress1,
			Address2: d.ShippingAddress2,
			City:     d.City,
			Zip:      d.Zip,
			Country:  d.Country,
			Phone:    d.Phone,
		},
		Status:      domain.Status(d.Status),
		TotalPrice:  total,
		UserID:      d.UserID,
		DateOrdered: d.DateOrdered,
	}, nil
}

func (r *OrderRepository) Insert(ctx context.Context, o *domain.Order) error {
	doc, err := toOrderDoc(o)
	if err != nil {
		return err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	o.ID = doc.ID.Hex()
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc orderDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}

	return doc.toDomain()
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateOrdered", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		o, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	update := bson.M{"$set": bson.M{"status": status.String()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc orderDoc
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	return doc.toDomain()
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
