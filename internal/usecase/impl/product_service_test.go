package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "github.com/gwanzi/dog-marketplace/internal/domain/errors"
	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	"github.com/gwanzi/dog-marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_Create(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerUser(t, "Pawfect", "shop@example.com", entity.RoleVendor)

	product, err := env.products.Create(context.Background(), &usecase.CreateProductInput{
		VendorID: vendor.ID,
		Title:    "Puppy Starter Pack",
		Price:    120000,
		Category: "food",
		Image:    "https://cdn.example.com/starter.jpg",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(product.ID, "prd_"))
	assert.Equal(t, vendor.ID, product.VendorID)
	assert.Equal(t, int64(120000), product.Price)
}

func TestProductService_CreateRejectsNonVendor(t *testing.T) {
	env := newTestEnv(t)
	buyer := env.registerUser(t, "Ada", "ada@example.com", entity.RoleBuyer)

	_, err := env.products.Create(context.Background(), &usecase.CreateProductInput{
		VendorID: buyer.ID,
		Title:    "Not Allowed",
		Price:    100,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestProductService_CreateRejectsNegativePrice(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerUser(t, "Pawfect", "shop@example.com", entity.RoleVendor)

	_, err := env.products.Create(context.Background(), &usecase.CreateProductInput{
		VendorID: vendor.ID,
		Title:    "Bad Price",
		Price:    -1,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestProductService_ListAndGet(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerUser(t, "Pawfect", "shop@example.com", entity.RoleVendor)
	ctx := context.Background()

	food, err := env.products.Create(ctx, &usecase.CreateProductInput{
		VendorID: vendor.ID, Title: "Kibble", Price: 5000, Category: "food",
	})
	require.NoError(t, err)
	_, err = env.products.Create(ctx, &usecase.CreateProductInput{
		VendorID: vendor.ID, Title: "Chew Toy", Price: 3500, Category: "toys",
	})
	require.NoError(t, err)

	all, err := env.products.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyFood, err := env.products.List(ctx, "food")
	require.NoError(t, err)
	require.Len(t, onlyFood, 1)
	assert.Equal(t, food.ID, onlyFood[0].ID)

	got, err := env.products.Get(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kibble", got.Title)

	_, err = env.products.Get(ctx, "prd_missing")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
