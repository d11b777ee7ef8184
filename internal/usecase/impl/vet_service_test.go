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

func ptr(f float64) *float64 { return &f }

func (env *testEnv) registerVetProfile(t *testing.T, email, clinic string, lat, lng *float64) *entity.Vet {
	t.Helper()

	user := env.registerUser(t, clinic, email, entity.RoleVet)
	vet, err := env.vets.UpsertProfile(context.Background(), &usecase.UpsertVetInput{
		UserID:    user.ID,
		Clinic:    clinic,
		License:   "VCN-0001",
		Latitude:  lat,
		Longitude: lng,
	})
	require.NoError(t, err)

	return vet
}

func TestVetService_UpsertProfileDefaults(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "Dr. Bello", "bello@example.com", entity.RoleVet)

	vet, err := env.vets.UpsertProfile(context.Background(), &usecase.UpsertVetInput{
		UserID: user.ID,
		Clinic: "Happy Paws",
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, vet.ID)
	assert.Equal(t, "Dr. Bello", vet.Name, "name falls back to the account name")
	assert.Equal(t, entity.DefaultSpecialty, vet.Specialty)
	assert.False(t, vet.HasCoordinates())
}

func TestVetService_UpsertProfileReplaces(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "Dr. Bello", "bello@example.com", entity.RoleVet)
	ctx := context.Background()

	_, err := env.vets.UpsertProfile(ctx, &usecase.UpsertVetInput{
		UserID:    user.ID,
		Clinic:    "Happy Paws",
		Latitude:  ptr(6.5244),
		Longitude: ptr(3.3792),
		Specialty: "Surgery",
	})
	require.NoError(t, err)

	// The second post fully replaces the record, coordinates included.
	replaced, err := env.vets.UpsertProfile(ctx, &usecase.UpsertVetInput{
		UserID: user.ID,
		Clinic: "Happy Paws Annex",
	})
	require.NoError(t, err)

	got, err := env.vets.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, replaced.Clinic, got.Clinic)
	assert.Equal(t, entity.DefaultSpecialty, got.Specialty)
	assert.Nil(t, got.Latitude)
}

func TestVetService_UpsertProfileRejectsHalfCoordinates(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "Dr. Bello", "bello@example.com", entity.RoleVet)

	_, err := env.vets.UpsertProfile(context.Background(), &usecase.UpsertVetInput{
		UserID:   user.ID,
		Clinic:   "Happy Paws",
		Latitude: ptr(6.5244),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestVetService_UpsertProfileRejectsWrongRole(t *testing.T) {
	env := newTestEnv(t)
	buyer := env.registerUser(t, "Ada", "ada@example.com", entity.RoleBuyer)

	_, err := env.vets.UpsertProfile(context.Background(), &usecase.UpsertVetInput{
		UserID: buyer.ID,
		Clinic: "Not a Clinic",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestVetService_SearchWithoutQueryReturnsAll(t *testing.T) {
	env := newTestEnv(t)
	lagos := env.registerVetProfile(t, "lagos@example.com", "Lagos Clinic", ptr(6.5244), ptr(3.3792))
	abuja := env.registerVetProfile(t, "abuja@example.com", "Abuja Clinic", ptr(9.0765), ptr(7.3986))

	ranked, err := env.vets.Search(context.Background(), &usecase.SearchVetsInput{})
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, lagos.ID, ranked[0].ID, "stored order is preserved without a query point")
	assert.Equal(t, abuja.ID, ranked[1].ID)
	assert.Nil(t, ranked[0].DistanceKm)
}

func TestVetService_SearchRanksByDistance(t *testing.T) {
	env := newTestEnv(t)
	lagos := env.registerVetProfile(t, "lagos@example.com", "Lagos Clinic", ptr(6.5244), ptr(3.3792))
	abuja := env.registerVetProfile(t, "abuja@example.com", "Abuja Clinic", ptr(9.0765), ptr(7.3986))
	unknown := env.registerVetProfile(t, "nowhere@example.com", "No Coordinates", nil, nil)

	// Query from Abuja: the Abuja clinic ranks first, the vet without
	// coordinates ranks last with no distance.
	ranked, err := env.vets.Search(context.Background(), &usecase.SearchVetsInput{
		Latitude:  ptr(9.0765),
		Longitude: ptr(7.3986),
	})
	require.NoError(t, err)

	require.Len(t, ranked, 3)
	assert.Equal(t, abuja.ID, ranked[0].ID)
	assert.Equal(t, lagos.ID, ranked[1].ID)
	assert.Equal(t, unknown.ID, ranked[2].ID)

	require.NotNil(t, ranked[1].DistanceKm)
	assert.InDelta(t, 483, *ranked[1].DistanceKm, 5)
	assert.Nil(t, ranked[2].DistanceKm)
}

func TestVetService_SearchRadiusFilters(t *testing.T) {
	env := newTestEnv(t)
	lagos := env.registerVetProfile(t, "lagos@example.com", "Lagos Clinic", ptr(6.5244), ptr(3.3792))
	env.registerVetProfile(t, "abuja@example.com", "Abuja Clinic", ptr(9.0765), ptr(7.3986))

	ranked, err := env.vets.Search(context.Background(), &usecase.SearchVetsInput{
		Latitude:  ptr(6.5244),
		Longitude: ptr(3.3792),
		RadiusKm:  ptr(50),
	})
	require.NoError(t, err)

	require.Len(t, ranked, 1)
	assert.Equal(t, lagos.ID, ranked[0].ID)
}

func TestVetService_SearchInvalidQueries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Half a coordinate pair.
	_, err := env.vets.Search(ctx, &usecase.SearchVetsInput{Latitude: ptr(6.5)})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	// A radius with no query point.
	_, err = env.vets.Search(ctx, &usecase.SearchVetsInput{RadiusKm: ptr(10)})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	// A negative radius.
	_, err = env.vets.Search(ctx, &usecase.SearchVetsInput{
		Latitude: ptr(6.5), Longitude: ptr(3.3), RadiusKm: ptr(-1),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestVetService_SearchClampsRadiusToConfiguredMax(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Proximity.MaxRadiusKm = 100

	env.registerVetProfile(t, "lagos@example.com", "Lagos Clinic", ptr(6.5244), ptr(3.3792))
	env.registerVetProfile(t, "abuja@example.com", "Abuja Clinic", ptr(9.0765), ptr(7.3986))

	// The requested 10000 km radius is capped at 100 km, so Abuja (~483 km
	// away) is excluded.
	ranked, err := env.vets.Search(context.Background(), &usecase.SearchVetsInput{
		Latitude:  ptr(6.5244),
		Longitude: ptr(3.3792),
		RadiusKm:  ptr(10000),
	})
	require.NoError(t, err)
	assert.Len(t, ranked, 1)
}
