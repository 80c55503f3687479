package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abubasith456/React-white-label/internal/model"
	"github.com/abubasith456/React-white-label/internal/repository"
	"github.com/abubasith456/React-white-label/internal/utils"
)

// ProductInput is the body of POST /products.  Price is whatever the
// client sent and is coerced on create.
type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       any    `json:"price"`
	Image       string `json:"image"`
	CategoryID  string `json:"categoryId"`
}

// CatalogService manages products and categories.
type CatalogService struct {
	tenants    *TenantService
	products   *repository.ProductRepo
	categories *repository.CategoryRepo
}

func NewCatalogService(tenants *TenantService, products *repository.ProductRepo, categories *repository.CategoryRepo) *CatalogService {
	return &CatalogService{tenants: tenants, products: products, categories: categories}
}

func (s *CatalogService) ListProducts(ctx context.Context, tenantID string) ([]model.Product, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	list, err := s.products.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, tenantID, id string) (*model.Product, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	p, err := s.products.GetByID(ctx, tenantID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// CreateProduct stores a new product.  CategoryID is not checked.
func (s *CatalogService) CreateProduct(ctx context.Context, tenantID string, in ProductInput) (*model.Product, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrMissingFields
	}
	p := &model.Product{
		ID:          utils.NewID(),
		TenantID:    tenantID,
		Name:        name,
		Description: in.Description,
		Price:       CoercePrice(in.Price),
		Image:       in.Image,
		CategoryID:  in.CategoryID,
	}
	if err := s.products.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	return p, nil
}

// ProductPatch is the body of PUT /products/:id.  Nil fields are left
// unchanged.
type ProductPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       any     `json:"price"`
	Image       *string `json:"image"`
	CategoryID  *string `json:"categoryId"`
}

// UpdateProduct merges patch into the live product.  Orders already
// placed keep the name and price they were snapshotted with.
func (s *CatalogService) UpdateProduct(ctx context.Context, tenantID, id string, patch ProductPatch) (*model.Product, error) {
	p, err := s.GetProduct(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if name := strings.TrimSpace(*patch.Name); name != "" {
			p.Name = name
		}
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = CoercePrice(patch.Price)
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if err := s.products.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	return p, nil
}

// DeleteProduct succeeds whether or not the product exists.
func (s *CatalogService) DeleteProduct(ctx context.Context, tenantID, id string) error {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context, tenantID string) ([]model.Category, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	list, err := s.categories.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, tenantID, name string) (*model.Category, error) {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}
	c := &model.Category{ID: utils.NewID(), TenantID: tenantID, Name: name}
	if err := s.categories.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return c, nil
}

// DeleteCategory succeeds whether or not the category exists.  Products
// pointing at it are left alone.
func (s *CatalogService) DeleteCategory(ctx context.Context, tenantID, id string) error {
	if _, err := s.tenants.Resolve(ctx, tenantID); err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
