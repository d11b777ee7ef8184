package jsonstore

import (
	"time"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
)

// userRecord is the persistence shape of a user. The entity hides the
// password hash from JSON serialization, so the store needs its own record
// type to keep the hash in the document.
type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toUserRecord(user *entity.User) *userRecord {
	return &userRecord{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		CreatedAt:    user.CreatedAt,
	}
}

func (r *userRecord) toEntity() *entity.User {
	return &entity.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         entity.Role(r.Role),
		CreatedAt:    r.CreatedAt,
	}
}
