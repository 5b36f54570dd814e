package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"restaurant-api/internal/models"
)

type TablePatch struct {
	Number   *int    `json:"number"`
	Capacity *int    `json:"capacity"`
	Status   *string `json:"status"`
}

func (s *Store) GetTable(id uint) (*models.Table, error) {
	var table models.Table
	if err := s.db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("table %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &table, nil
}

func (s *Store) ListTables(offset, limit int, status string) ([]models.Table, int64, error) {
	var tables []models.Table
	var total int64

	query := s.db.Model(&models.Table{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Limit(limit).Offset(offset).Find(&tables).Error; err != nil {
		return nil, 0, err
	}
	return tables, total, nil
}

func (s *Store) CreateTable(table *models.Table) error {
	if table.Capacity <= 0 {
		return fmt.Errorf("table capacity must be greater than zero: %w", ErrInvalidValue)
	}
	if table.Status == "" {
		table.Status = models.TableStatusFree
	}
	if !models.ValidTableStatus(table.Status) {
		return fmt.Errorf("table status %q: %w", table.Status, ErrInvalidEnum)
	}
	if err := s.db.Create(table).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("table number %d already exists: %w", table.Number, ErrConflict)
		}
		return err
	}
	return nil
}

func (s *Store) UpdateTable(id uint, patch TablePatch) (*models.Table, error) {
	table, err := s.GetTable(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Number != nil {
		updates["number"] = *patch.Number
	}
	if patch.Capacity != nil {
		if *patch.Capacity <= 0 {
			return nil, fmt.Errorf("table capacity must be greater than zero: %w", ErrInvalidValue)
		}
		updates["capacity"] = *patch.Capacity
	}
	if patch.Status != nil {
		if !models.ValidTableStatus(*patch.Status) {
			return nil, fmt.Errorf("table status %q: %w", *patch.Status, ErrInvalidEnum)
		}
		updates["status"] = *patch.Status
	}
	if len(updates) == 0 {
		return table, nil
	}

	if err := s.db.Model(table).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("table number already exists: %w", ErrConflict)
		}
		return nil, err
	}
	return table, nil
}

func (s *Store) DeleteTable(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Table{}, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("table %d: %w", id, ErrNotFound)
			}
			return err
		}

		var dependents int64
		if err := tx.Model(&models.Order{}).Where("table_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return fmt.Errorf("table %d has %d orders: %w", id, dependents, ErrConflict)
		}

		return tx.Delete(&models.Table{}, id).Error
	})
}
