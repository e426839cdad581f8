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

	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/catalog"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection("products")}
}

type productDoc struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	Name            string               `bson:"name"`
	Description     string               `bson:"description"`
	RichDescription string               `bson:"richDescription,omitempty"`
	Brand           string               `bson:"brand,omitempty"`
	Price           primitive.Decimal128 `bson:"price"`
	CategoryID      string               `bson:"category"`
	CountInStock    int                  `bson:"countInStock"`
	Rating          float64              `bson:"rating"`
	NumReviews      int                  `bson:"numReviews"`
	IsFeatured      bool                 `bson:"isFeatured"`
	DateCreated     time.Time            `bson:"dateCreated"`
}

func toProductDoc(p *domain.Product) (*productDoc, error) {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return nil, err
	}

	doc := &productDoc{
		Name:            p.Name,
		Description:     p.Description,
		RichDescription: p.RichDescription,
		Brand:           p.Brand,
		Price:           price,
		CategoryID:      p.CategoryID,
		CountInStock:    p.CountInStock,
		Rating:          p.Rating,
		NumReviews:      p.NumReviews,
		IsFeatured:      p.IsFeatured,
		DateCreated:     p.DateCreated,
	}
	if p.ID != "" {
		oid, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %s: %w", p.ID, err)
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d *productDoc) toDomain() (*domain.Product, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return nil, err
	}

	return &domain.Product{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Description:     d.Description,
		RichDescription: d.RichDescription,
		Brand:           d.Brand,
		Price:           price,
		CategoryID:      d.CategoryID,
		CountInStock:    d.CountInStock,
		Rating:          d.Rating,
		NumReviews:      d.NumReviews,
		IsFeatured:      d.IsFeatured,
		DateCreated:     d.DateCreated,
	}, nil
}

func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) error {
	doc, err := toProductDoc(p)
	if err != nil {
		return err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	p.ID = doc.ID.Hex()
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var doc productDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}

	return doc.toDomain()
}

func (r *ProductRepository) FindAll(ctx context.Context, categoryIDs []string) ([]domain.Product, error) {
	filter := bson.M{}
	if len(categoryIDs) > 0 {
		filter["category"] = bson.M{"$in": categoryIDs}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeProducts(ctx, cursor)
}

func (r *ProductRepository) FindFeatured(ctx context.Context, limit int64) ([]domain.Product, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"isFeatured": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeProducts(ctx, cursor)
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	doc, err := toProductDoc(p)
	if err != nil {
		return nil, err
	}
	if doc.ID.IsZero() {
		return nil, domain.ErrProductNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":            doc.Name,
		"description":     doc.Description,
		"richDescription": doc.RichDescription,
		"brand":           doc.Brand,
		"price":           doc.Price,
		"category":        doc.CategoryID,
		"countInStock":    doc.CountInStock,
		"isFeatured":      doc.IsFeatured,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated productDoc
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": doc.ID}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return updated.toDomain()
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]domain.Product, error) {
	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}
