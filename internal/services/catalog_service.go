package services

import (
	"errors"
	"strings"

	"sbsoverseas/internal/content"
	"sbsoverseas/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService is the public read surface over the products list domain.
type CatalogService struct {
	Content *content.Store
}

func NewCatalogService(store *content.Store) *CatalogService {
	return &CatalogService{Content: store}
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	return s.Content.Products()
}

// GetProduct looks a product up by id first, then by derived slug. Slugs are
// not unique, so a slug hit returns the first match.
func (s *CatalogService) GetProduct(idOrSlug string) (domain.Product, error) {
	products, err := s.Content.Products()
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == idOrSlug {
			return p, nil
		}
	}
	for _, p := range products {
		if p.Slug() == idOrSlug {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// Search matches q against product names, descriptions, and varieties.
func (s *CatalogService) Search(q string) ([]domain.Product, error) {
	products, err := s.Content.Products()
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return products, nil
	}
	var out []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
			continue
		}
		for _, v := range p.Varieties {
			if strings.Contains(strings.ToLower(v), q) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}
