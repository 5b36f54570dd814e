package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"restaurant-api/internal/models"
)

type WaiterPatch struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

func (s *Store) GetWaiter(id uint) (*models.Waiter, error) {
	var waiter models.Waiter
	if err := s.db.First(&waiter, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("waiter %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &waiter, nil
}

func (s *Store) ListWaiters(offset, limit int) ([]models.Waiter, int64, error) {
	var waiters []models.Waiter
	var total int64

	if err := s.db.Model(&models.Waiter{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.db.Limit(limit).Offset(offset).Find(&waiters).Error; err != nil {
		return nil, 0, err
	}
	return waiters, total, nil
}

// CreateWaiter inserts a waiter. A zero HireDate defaults to today.
func (s *Store) CreateWaiter(waiter *models.Waiter) error {
	if waiter.Name == "" {
		return fmt.Errorf("waiter name must not be empty: %w", ErrInvalidValue)
	}
	if waiter.HireDate.IsZero() {
		now := time.Now().UTC()
		waiter.HireDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return s.db.Create(waiter).Error
}

func (s *Store) UpdateWaiter(id uint, patch WaiterPatch) (*models.Waiter, error) {
	waiter, err := s.GetWaiter(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, fmt.Errorf("waiter name must not be empty: %w", ErrInvalidValue)
		}
		updates["name"] = *patch.Name
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if len(updates) == 0 {
		return waiter, nil
	}

	if err := s.db.Model(waiter).Updates(updates).Error; err != nil {
		return nil, err
	}
	return waiter, nil
}

func (s *Store) DeleteWaiter(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Waiter{}, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("waiter %d: %w", id, ErrNotFound)
			}
			return err
		}

		var dependents int64
		if err := tx.Model(&models.Order{}).Where("waiter_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return fmt.Errorf("waiter %d has %d orders: %w", id, dependents, ErrConflict)
		}

		return tx.Delete(&models.Waiter{}, id).Error
	})
}
