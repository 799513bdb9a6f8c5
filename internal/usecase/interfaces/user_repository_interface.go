package interfaces

import (
	"context"

	"autocare/internal/domain/entities"
)

// IUserRepository persists one aggregate UserProfile document per user id.
//
// Lookup misses return a zero-value profile (UserID == "") without an
// error; errors are reserved for storage failures. Save overwrites the
// whole aggregate and must preserve array append order.
type IUserRepository interface {
	FindByUser(ctx context.Context, userID string) (entities.UserProfile, error)
	Create(ctx context.Context, userID string) (entities.UserProfile, error)
	Save(ctx context.Context, profile entities.UserProfile) error
	List(ctx context.Context) ([]entities.UserProfile, error)
}
