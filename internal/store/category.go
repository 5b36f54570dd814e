package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"restaurant-api/internal/models"
)

// CategoryPatch carries a partial update. Nil fields are left unchanged.
type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *Store) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &category, nil
}

func (s *Store) ListCategories(offset, limit int) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64

	if err := s.db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.db.Limit(limit).Offset(offset).Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (s *Store) CreateCategory(category *models.Category) error {
	if category.Name == "" {
		return fmt.Errorf("category name must not be empty: %w", ErrInvalidValue)
	}
	if err := s.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("category %q already exists: %w", category.Name, ErrConflict)
		}
		return err
	}
	return nil
}

func (s *Store) UpdateCategory(id uint, patch CategoryPatch) (*models.Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, fmt.Errorf("category name must not be empty: %w", ErrInvalidValue)
		}
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if len(updates) == 0 {
		return category, nil
	}

	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("category name already exists: %w", ErrConflict)
		}
		return nil, err
	}
	return category, nil
}

func (s *Store) DeleteCategory(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Category{}, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("category %d: %w", id, ErrNotFound)
			}
			return err
		}

		var dependents int64
		if err := tx.Model(&models.MenuItem{}).Where("category_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return fmt.Errorf("category %d has %d menu items: %w", id, dependents, ErrConflict)
		}

		return tx.Delete(&models.Category{}, id).Error
	})
}
