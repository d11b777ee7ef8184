package jsonstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gwanzi/dog-marketplace/config"
	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	"github.com/gwanzi/dog-marketplace/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.Path = filepath.Join(t.TempDir(), "marketplace.json")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store, err := New(cfg, logger)
	require.NoError(t, err)

	return store
}

func TestStore_StartsEmptyWhenFileMissing(t *testing.T) {
	store := newTestStore(t)

	users, err := NewVendorRepository(store).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Path = filepath.Join(t.TempDir(), "marketplace.json")
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := New(cfg, logger)
	require.NoError(t, err)

	ctx := context.Background()
	vendor := &entity.Vendor{ID: "vnd_1", Name: "Pawfect Supplies", Location: "Lagos"}
	require.NoError(t, NewVendorRepository(store).Create(ctx, vendor))

	// Reopen from the same file and expect the vendor back.
	reopened, err := New(cfg, logger)
	require.NoError(t, err)

	found, err := NewVendorRepository(reopened).FindByID(ctx, "vnd_1")
	require.NoError(t, err)
	assert.Equal(t, "Pawfect Supplies", found.Name)
}

func TestStore_FileIsValidJSONDocument(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Path = filepath.Join(t.TempDir(), "data", "marketplace.json")
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := New(cfg, logger)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, NewProductRepository(store).Create(ctx, &entity.Product{
		ID:    "prd_1",
		Title: "Dog Leash",
		Price: 4500,
	}))

	raw, err := os.ReadFile(cfg.Store.Path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "products")
	assert.Contains(t, doc, "users")
}

func TestStore_RejectsCorruptFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Path = filepath.Join(t.TempDir(), "marketplace.json")
	require.NoError(t, os.WriteFile(cfg.Store.Path, []byte("{not json"), 0o644))

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	_, err := New(cfg, logger)
	assert.Error(t, err)
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	user := &entity.User{
		ID:           "usr_1",
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$fakehash",
		Role:         entity.RoleBuyer,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.FindByID(ctx, "usr_1")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)
	assert.Equal(t, "$2a$10$fakehash", byID.PasswordHash)

	byEmail, err := repo.FindByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "usr_1", byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "usr_1", Email: "ada@example.com"}))

	err := repo.Create(ctx, &entity.User{ID: "usr_2", Email: "Ada@Example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_PasswordHashSurvivesReload(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Path = filepath.Join(t.TempDir(), "marketplace.json")
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := New(cfg, logger)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, NewUserRepository(store).Create(ctx, &entity.User{
		ID:           "usr_1",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$fakehash",
	}))

	reopened, err := New(cfg, logger)
	require.NoError(t, err)

	found, err := NewUserRepository(reopened).FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$fakehash", found.PasswordHash)
}

func TestProductRepository_ListByCategory(t *testing.T) {
	store := newTestStore(t)
	repo := NewProductRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "prd_1", Category: "food"}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "prd_2", Category: "toys"}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "prd_3", Category: "Food"}))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	food, err := repo.List(ctx, "food")
	require.NoError(t, err)
	require.Len(t, food, 2)
	assert.Equal(t, "prd_1", food[0].ID)
	assert.Equal(t, "prd_3", food[1].ID)
}

func TestProductRepository_FindByIDs(t *testing.T) {
	store := newTestStore(t)
	repo := NewProductRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "prd_1", Price: 1000}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "prd_2", Price: 2000}))

	catalog, err := repo.FindByIDs(ctx, []string{"prd_1", "missing"})
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, int64(1000), catalog["prd_1"].Price)
}

func TestVetRepository_UpsertReplaces(t *testing.T) {
	store := newTestStore(t)
	repo := NewVetRepository(store)
	ctx := context.Background()

	lat, lng := 6.5244, 3.3792
	require.NoError(t, repo.Upsert(ctx, &entity.Vet{
		ID:        "vet_1",
		Name:      "Dr. Bello",
		Clinic:    "Happy Paws",
		Latitude:  &lat,
		Longitude: &lng,
		Specialty: "Surgery",
	}))

	// Full replace: the new record has no coordinates and a new specialty.
	require.NoError(t, repo.Upsert(ctx, &entity.Vet{
		ID:        "vet_1",
		Name:      "Dr. Bello",
		Clinic:    "Happy Paws Annex",
		Specialty: entity.DefaultSpecialty,
	}))

	found, err := repo.FindByID(ctx, "vet_1")
	require.NoError(t, err)
	assert.Equal(t, "Happy Paws Annex", found.Clinic)
	assert.Equal(t, entity.DefaultSpecialty, found.Specialty)
	assert.Nil(t, found.Latitude)

	vets, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, vets, 1, "upsert must not duplicate the record")
}

func TestVetRepository_CloneIsolation(t *testing.T) {
	store := newTestStore(t)
	repo := NewVetRepository(store)
	ctx := context.Background()

	lat, lng := 6.5244, 3.3792
	require.NoError(t, repo.Upsert(ctx, &entity.Vet{ID: "vet_1", Latitude: &lat, Longitude: &lng}))

	found, err := repo.FindByID(ctx, "vet_1")
	require.NoError(t, err)
	*found.Latitude = 99

	again, err := repo.FindByID(ctx, "vet_1")
	require.NoError(t, err)
	assert.Equal(t, 6.5244, *again.Latitude, "mutating a result must not touch the document")
}

func TestOrderRepository_ListByUser(t *testing.T) {
	store := newTestStore(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Order{ID: "ord_1", UserID: "usr_1", Total: 100}))
	require.NoError(t, repo.Create(ctx, &entity.Order{ID: "ord_2", UserID: "usr_2", Total: 200}))
	require.NoError(t, repo.Create(ctx, &entity.Order{ID: "ord_3", UserID: "usr_1", Total: 300}))

	orders, err := repo.ListByUser(ctx, "usr_1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ord_1", orders[0].ID)
	assert.Equal(t, "ord_3", orders[1].ID)

	missing, err := repo.FindByID(ctx, "ord_999")
	assert.Nil(t, missing)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
