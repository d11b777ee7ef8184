package impl

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gwanzi/dog-marketplace/config"
	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	"github.com/gwanzi/dog-marketplace/internal/domain/repository"
	"github.com/gwanzi/dog-marketplace/internal/domain/service"
	"github.com/gwanzi/dog-marketplace/internal/infra/auth"
	"github.com/gwanzi/dog-marketplace/internal/infra/persistence/jsonstore"
	"github.com/gwanzi/dog-marketplace/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testEnv wires the services against a real JSON document store in a temp
// directory, so usecase tests exercise the same persistence path as the
// running service.
type testEnv struct {
	cfg    *config.Config
	logger *slog.Logger

	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	vendorRepo  repository.VendorRepository
	vetRepo     repository.VetRepository
	orderRepo   repository.OrderRepository

	hasher service.PasswordHasher
	tokens service.TokenService

	users    usecase.UserUsecase
	products usecase.ProductUsecase
	vendors  usecase.VendorUsecase
	vets     usecase.VetUsecase
	orders   usecase.OrderUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.Path = filepath.Join(t.TempDir(), "marketplace.json")
	cfg.SecretKey = config.SecretKeyConfig{
		Access:  "test_access_secret_key_very_long_for_testing",
		Refresh: "test_refresh_secret_key_very_long_for_testing",
	}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	cfg.Proximity = &config.ProximityConfig{MaxRadiusKm: 1000}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	store, err := jsonstore.New(cfg, logger)
	require.NoError(t, err)

	env := &testEnv{
		cfg:         cfg,
		logger:      logger,
		userRepo:    jsonstore.NewUserRepository(store),
		productRepo: jsonstore.NewProductRepository(store),
		vendorRepo:  jsonstore.NewVendorRepository(store),
		vetRepo:     jsonstore.NewVetRepository(store),
		orderRepo:   jsonstore.NewOrderRepository(store),
		hasher:      auth.NewBcryptHasher(cfg),
	}

	env.tokens, err = auth.NewJWTService(cfg)
	require.NoError(t, err)

	env.users = NewUserService(UserServiceParams{
		UserRepo:     env.userRepo,
		Hasher:       env.hasher,
		TokenService: env.tokens,
		Logger:       logger,
	})
	env.products = NewProductService(env.productRepo, env.userRepo, logger)
	env.vendors = NewVendorService(env.vendorRepo, env.userRepo, logger)
	env.vets = NewVetService(env.vetRepo, env.userRepo, cfg, logger)
	env.orders = NewOrderService(env.orderRepo, env.productRepo, logger)

	return env
}

// registerUser is a shortcut for tests that need an existing account.
func (env *testEnv) registerUser(t *testing.T, name, email string, role entity.Role) *entity.User {
	t.Helper()

	out, err := env.users.Register(context.Background(), &usecase.RegisterInput{
		Name:     name,
		Email:    email,
		Password: "correct-horse-battery",
		Role:     role,
	})
	require.NoError(t, err)

	return out.User
}
