package jsonstore

import (
	"context"
	"strings"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	"github.com/gwanzi/dog-marketplace/internal/domain/repository"
)

// productRepository implements repository.ProductRepository on the JSON document.
type productRepository struct {
	store *Store
}

// NewProductRepository creates a product repository backed by the shared store.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{store: store}
}

// Create persists a new product listing.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.store.update(func(doc *document) error {
		doc.Products = append(doc.Products, cloneProduct(product))

		return nil
	})
}

// FindByID retrieves a product by its unique ID.
func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var found *entity.Product

	err := r.store.view(func(doc *document) error {
		for _, product := range doc.Products {
			if product.ID == id {
				found = cloneProduct(product)

				return nil
			}
		}

		return repository.ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// List retrieves products, optionally filtered by category (case-insensitive).
func (r *productRepository) List(ctx context.Context, category string) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0)

	err := r.store.view(func(doc *document) error {
		for _, product := range doc.Products {
			if category != "" && !strings.EqualFold(product.Category, category) {
				continue
			}
			products = append(products, cloneProduct(product))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// FindByIDs retrieves the products for the given ids as a catalog map.
// Unknown ids are simply absent from the result.
func (r *productRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	catalog := make(map[string]*entity.Product, len(ids))

	err := r.store.view(func(doc *document) error {
		for _, product := range doc.Products {
			if _, ok := wanted[product.ID]; ok {
				catalog[product.ID] = cloneProduct(product)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}

func cloneProduct(product *entity.Product) *entity.Product {
	clone := *product

	return &clone
}
