package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	domain "github.com/shehanwijeyaweera/seyrashki-mobile-api/internal/domain/user"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	Phone        string             `bson:"phone,omitempty"`
	IsAdmin      bool               `bson:"isAdmin"`
	Street       string             `bson:"street,omitempty"`
	Apartment    string             `bson:"apartment,omitempty"`
	Zip          string             `bson:"zip,omitempty"`
	City         string             `bson:"city,omitempty"`
	Country      string             `bson:"country,omitempty"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Phone:        d.Phone,
		IsAdmin:      d.IsAdmin,
		Street:       d.Street,
		Apartment:    d.Apartment,
		Zip:          d.Zip,
		City:         d.City,
		Country:      d.Country,
	}
}

func (r *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	doc := userDoc{
		ID:           primitive.NewObjectID(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		IsAdmin:      u.IsAdmin,
		Street:       u.Street,
		Apartment:    u.Apartment,
		Zip:          u.Zip,
		City:         u.City,
		Country:      u.Country,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	u.ID = doc.ID.Hex()
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc userDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, *doc.toDomain())
	}
	return users, nil
}
