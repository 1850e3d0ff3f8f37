package repo

import (
	"errors"

	"github.com/reev-boutik/produit/internal/models"
)

type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}

// ErrUserNotFound is returned when no user exists with the given username.
var ErrUserNotFound = errors.New("user not found")
