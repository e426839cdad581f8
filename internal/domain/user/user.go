package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingField = errors.New("required field is missing")
	ErrNotFound     = errors.New("user not found")
)

// User is a registered customer. PasswordHash is never serialized.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone"`
	IsAdmin      bool   `json:"isAdmin"`
	Street       string `json:"street"`
	Apartment    string `json:"apartment"`
	Zip          string `json:"zip"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

func New(name, email, password, phone, street, apartment, zip, city, country string, isAdmin bool) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		IsAdmin:      isAdmin,
		Street:       street,
		Apartment:    apartment,
		Zip:          zip,
		City:         city,
		Country:      country,
	}, nil
}
