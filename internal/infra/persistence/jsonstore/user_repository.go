package jsonstore

import (
	"context"
	"strings"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	"github.com/gwanzi/dog-marketplace/internal/domain/repository"
)

// userRepository implements repository.UserRepository on the JSON document.
type userRepository struct {
	store *Store
}

// NewUserRepository creates a user repository backed by the shared store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// Create persists a new user after checking email uniqueness. The check and
// the append happen under the same write lock, so two racing registrations
// cannot both claim an email.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.store.update(func(doc *document) error {
		for _, existing := range doc.Users {
			if strings.EqualFold(existing.Email, user.Email) {
				return repository.ErrDuplicateEmail
			}
		}

		doc.Users = append(doc.Users, toUserRecord(user))

		return nil
	})
}

// FindByID retrieves a single user by their unique ID.
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var found *entity.User

	err := r.store.view(func(doc *document) error {
		for _, record := range doc.Users {
			if record.ID == id {
				found = record.toEntity()

				return nil
			}
		}

		return repository.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// FindByEmail retrieves a single user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var found *entity.User

	err := r.store.view(func(doc *document) error {
		for _, record := range doc.Users {
			if strings.EqualFold(record.Email, email) {
				found = record.toEntity()

				return nil
			}
		}

		return repository.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}
