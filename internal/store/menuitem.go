package store

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restaurant-api/internal/models"
)

type MenuItemPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *uint            `json:"category_id"`
	Active      *bool            `json:"active"`
}

func (s *Store) GetMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListMenuItems(offset, limit int, categoryID *uint, active *bool) ([]models.MenuItem, int64, error) {
	var items []models.MenuItem
	var total int64

	query := s.db.Model(&models.MenuItem{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if active != nil {
		query = query.Where("active = ?", *active)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Store) CreateMenuItem(item *models.MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("menu item name must not be empty: %w", ErrInvalidValue)
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("menu item price must not be negative: %w", ErrInvalidValue)
	}
	if _, err := s.GetCategory(item.CategoryID); err != nil {
		return err
	}
	return s.db.Create(item).Error
}

func (s *Store) UpdateMenuItem(id uint, patch MenuItemPatch) (*models.MenuItem, error) {
	item, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, fmt.Errorf("menu item name must not be empty: %w", ErrInvalidValue)
		}
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		if patch.Price.IsNegative() {
			return nil, fmt.Errorf("menu item price must not be negative: %w", ErrInvalidValue)
		}
		updates["price"] = *patch.Price
	}
	if patch.CategoryID != nil {
		if _, err := s.GetCategory(*patch.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *patch.CategoryID
	}
	if patch.Active != nil {
		updates["active"] = *patch.Active
	}
	if len(updates) == 0 {
		return item, nil
	}

	if err := s.db.Model(item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Store) DeleteMenuItem(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.MenuItem{}, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("menu item %d: %w", id, ErrNotFound)
			}
			return err
		}

		var dependents int64
		if err := tx.Model(&models.OrderLine{}).Where("product_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return fmt.Errorf("menu item %d is referenced by %d order lines: %w", id, dependents, ErrConflict)
		}

		return tx.Delete(&models.MenuItem{}, id).Error
	})
}
