package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/LearnPlayAI/HeartCart-sub006/models"
)

// MemStore is an in-memory Store used by tests and local development.
// It applies writes immediately and has no transaction support, so
// WithinTransaction does not roll back on failure.
type MemStore struct {
	mu sync.Mutex

	Categories map[uint]*models.Category
	Products   map[uint]*models.Product
	Catalogs   map[uint]*models.Catalog
	Suppliers  map[uint]*models.Supplier

	// ProductUpdateHook, when set, runs before every product write and
	// can inject a failure.
	ProductUpdateHook func(id uint) error
}

func NewMemStore() *MemStore {
	return &MemStore{
		Categories: make(map[uint]*models.Category),
		Products:   make(map[uint]*models.Product),
		Catalogs:   make(map[uint]*models.Catalog),
		Suppliers:  make(map[uint]*models.Supplier),
	}
}

func (s *MemStore) GetAllCategories(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Category
	for _, c := range s.Categories {
		if !includeInactive && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	sortCategories(out)
	return out, nil
}

func (s *MemStore) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.Categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *MemStore) GetChildCategories(ctx context.Context, parentID uint, includeInactive bool) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Category
	for _, c := range s.Categories {
		if c.ParentID == nil || *c.ParentID != parentID {
			continue
		}
		if !includeInactive && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	sortCategories(out)
	return out, nil
}

func (s *MemStore) UpdateCategory(ctx context.Context, id uint, patch map[string]interface{}) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.Categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	if v, ok := patch["is_active"]; ok {
		c.IsActive = v.(bool)
	}
	if v, ok := patch["name"]; ok {
		c.Name = v.(string)
	}
	cp := *c
	return &cp, nil
}

func (s *MemStore) GetProductsByCategory(ctx context.Context, categoryID uint, limit, offset int, includeInactive bool) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Product
	for _, p := range s.Products {
		if p.CategoryID != categoryID {
			continue
		}
		if !includeInactive && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemStore) UpdateProduct(ctx context.Context, id uint, patch map[string]interface{}) (*models.Product, error) {
	s.mu.Lock()
	hook := s.ProductUpdateHook
	s.mu.Unlock()
	if hook != nil {
		if err := hook(id); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.Products[id]
	if !ok {
		return nil, ErrNotFound
	}
	if v, ok := patch["is_active"]; ok {
		p.IsActive = v.(bool)
	}
	pp := *p
	return &pp, nil
}

func (s *MemStore) GetSupplierByID(ctx context.Context, id uint) (*models.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sup, ok := s.Suppliers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *sup
	return &cp, nil
}

func (s *MemStore) UpdateSupplier(ctx context.Context, id uint, patch map[string]interface{}) (*models.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sup, ok := s.Suppliers[id]
	if !ok {
		return nil, ErrNotFound
	}
	if v, ok := patch["is_active"]; ok {
		sup.IsActive = v.(bool)
	}
	if v, ok := patch["name"]; ok {
		sup.Name = v.(string)
	}
	cp := *sup
	return &cp, nil
}

func (s *MemStore) GetCatalogByID(ctx context.Context, id uint) (*models.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k, ok := s.Catalogs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *k
	return &cp, nil
}

func (s *MemStore) GetCatalogsBySupplierID(ctx context.Context, supplierID uint, activeOnly bool) ([]models.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Catalog
	for _, k := range s.Catalogs {
		if k.SupplierID != supplierID {
			continue
		}
		if activeOnly && !k.IsActive {
			continue
		}
		out = append(out, *k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) UpdateCatalog(ctx context.Context, id uint, patch map[string]interface{}) (*models.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k, ok := s.Catalogs[id]
	if !ok {
		return nil, ErrNotFound
	}
	if v, ok := patch["is_active"]; ok {
		k.IsActive = v.(bool)
	}
	if v, ok := patch["name"]; ok {
		k.Name = v.(string)
	}
	kp := *k
	return &kp, nil
}

func (s *MemStore) BulkUpdateCatalogProducts(ctx context.Context, catalogID uint, isActive bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, p := range s.Products {
		if p.CatalogID != nil && *p.CatalogID == catalogID {
			p.IsActive = isActive
			count++
		}
	}
	return count, nil
}

func (s *MemStore) BulkUpdateProductStatus(ctx context.Context, ids []uint, isActive bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, id := range ids {
		if p, ok := s.Products[id]; ok {
			p.IsActive = isActive
			count++
		}
	}
	return count, nil
}

func (s *MemStore) WithinTransaction(ctx context.Context, fn func(Store) error) error {
	return fn(s)
}

func sortCategories(cs []models.Category) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Level != cs[j].Level {
			return cs[i].Level < cs[j].Level
		}
		return cs[i].ID < cs[j].ID
	})
}
