package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/catalog"
)

type CategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{collection: db.Collection("categories")}
}

type categoryDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Icon  string             `bson:"icon,omitempty"`
	Color string             `bson:"color,omitempty"`
}

func (d *categoryDoc) toDomain() *domain.Category {
	return &domain.Category{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Icon:  d.Icon,
		Color: d.Color,
	}
}

func (r *CategoryRepository) Insert(ctx context.Context, c *domain.Category) error {
	doc := categoryDoc{
		ID:    primitive.NewObjectID(),
		Name:  c.Name,
		Icon:  c.Icon,
		Color: c.Color,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}

	c.ID = doc.ID.Hex()
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	var doc categoryDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []categoryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, *doc.toDomain())
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":  c.Name,
		"icon":  c.Icon,
		"color": c.Color,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc categoryDoc
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCategoryNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
