package impl

import (
	"context"
	"testing"

	domainerrors "github.com/gwanzi/dog-marketplace/internal/domain/errors"
	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	"github.com/gwanzi/dog-marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorService_CreateProfile(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "Pawfect", "shop@example.com", entity.RoleVendor)

	vendor, err := env.vendors.CreateProfile(context.Background(), &usecase.CreateVendorInput{
		UserID:   user.ID,
		Name:     "Pawfect Supplies",
		Location: "Lagos",
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, vendor.ID, "profile is keyed by the owning user")
	assert.Equal(t, "Pawfect Supplies", vendor.Name)
	assert.Zero(t, vendor.Rating)
}

func TestVendorService_CreateProfileIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "Pawfect", "shop@example.com", entity.RoleVendor)
	ctx := context.Background()

	first, err := env.vendors.CreateProfile(ctx, &usecase.CreateVendorInput{
		UserID: user.ID, Name: "Pawfect Supplies", Location: "Lagos",
	})
	require.NoError(t, err)

	// Re-posting with different data returns the original, unchanged.
	second, err := env.vendors.CreateProfile(ctx, &usecase.CreateVendorInput{
		UserID: user.ID, Name: "Different Name", Location: "Abuja",
	})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	vendors, err := env.vendors.List(ctx)
	require.NoError(t, err)
	assert.Len(t, vendors, 1)
}

func TestVendorService_CreateProfileNameFallsBackToUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "Pawfect", "shop@example.com", entity.RoleVendor)

	vendor, err := env.vendors.CreateProfile(context.Background(), &usecase.CreateVendorInput{
		UserID: user.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pawfect", vendor.Name)
}

func TestVendorService_CreateProfileRejectsWrongRole(t *testing.T) {
	env := newTestEnv(t)
	buyer := env.registerUser(t, "Ada", "ada@example.com", entity.RoleBuyer)

	_, err := env.vendors.CreateProfile(context.Background(), &usecase.CreateVendorInput{
		UserID: buyer.ID,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestVendorService_Get(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.vendors.Get(ctx, "vnd_missing")
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
}
