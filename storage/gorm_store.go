package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/LearnPlayAI/HeartCart-sub006/models"
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetAllCategories(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	var categories []models.Category
	q := s.db.WithContext(ctx).Order("level asc, name asc")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormStore) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormStore) GetChildCategories(ctx context.Context, parentID uint, includeInactive bool) ([]models.Category, error) {
	var children []models.Category
	q := s.db.WithContext(ctx).Where("parent_id = ?", parentID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

func (s *GormStore) UpdateCategory(ctx context.Context, id uint, patch map[string]interface{}) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&category).Updates(patch).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormStore) GetProductsByCategory(ctx context.Context, categoryID uint, limit, offset int, includeInactive bool) ([]models.Product, error) {
	var products []models.Product
	q := s.db.WithContext(ctx).Where("category_id = ?", categoryID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStore) UpdateProduct(ctx context.Context, id uint, patch map[string]interface{}) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&product).Updates(patch).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormStore) GetSupplierByID(ctx context.Context, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	err := s.db.WithContext(ctx).First(&supplier, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (s *GormStore) UpdateSupplier(ctx context.Context, id uint, patch map[string]interface{}) (*models.Supplier, error) {
	var supplier models.Supplier
	err := s.db.WithContext(ctx).First(&supplier, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&supplier).Updates(patch).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (s *GormStore) GetCatalogByID(ctx context.Context, id uint) (*models.Catalog, error) {
	var catalog models.Catalog
	err := s.db.WithContext(ctx).First(&catalog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (s *GormStore) GetCatalogsBySupplierID(ctx context.Context, supplierID uint, activeOnly bool) ([]models.Catalog, error) {
	var catalogs []models.Catalog
	q := s.db.WithContext(ctx).Where("supplier_id = ?", supplierID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&catalogs).Error; err != nil {
		return nil, err
	}
	return catalogs, nil
}

func (s *GormStore) UpdateCatalog(ctx context.Context, id uint, patch map[string]interface{}) (*models.Catalog, error) {
	var catalog models.Catalog
	err := s.db.WithContext(ctx).First(&catalog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&catalog).Updates(patch).Error; err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (s *GormStore) BulkUpdateCatalogProducts(ctx context.Context, catalogID uint, isActive bool) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("catalog_id = ?", catalogID).
		Update("is_active", isActive)
	return res.RowsAffected, res.Error
}

func (s *GormStore) BulkUpdateProductStatus(ctx context.Context, ids []uint, isActive bool) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id IN ?", ids).
		Update("is_active", isActive)
	return res.RowsAffected, res.Error
}

func (s *GormStore) WithinTransaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}
