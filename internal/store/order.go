package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restaurant-api/internal/models"
)

type OrderPatch struct {
	TableID  *uint   `json:"table_id"`
	WaiterID *uint   `json:"waiter_id"`
	Comments *string `json:"comments"`
}

func (s *Store) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Lines").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &order, nil
}

func (s *Store) ListOrders(offset, limit int, tableID *uint, status string) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := s.db.Model(&models.Order{})
	if tableID != nil {
		query = query.Where("table_id = ?", *tableID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Preload("Lines").Order("created_at desc").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// CreateOrder opens an order, optionally with an inline batch of lines.
// The batch is all-or-nothing: any invalid line aborts the whole creation.
func (s *Store) CreateOrder(order *models.Order, lines []models.OrderLine) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Table{}, order.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("table %d: %w", order.TableID, ErrNotFound)
			}
			return err
		}
		if err := tx.First(&models.Waiter{}, order.WaiterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("waiter %d: %w", order.WaiterID, ErrNotFound)
			}
			return err
		}

		order.Status = models.OrderStatusOpen
		order.Total = decimal.Zero
		order.ClosedAt = nil
		order.Lines = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for i := range lines {
			line := &lines[i]
			line.OrderID = order.ID
			if err := prepareLine(tx, line); err != nil {
				return err
			}
			if err := tx.Create(line).Error; err != nil {
				return err
			}
			total = total.Add(line.Subtotal)
		}

		if len(lines) > 0 {
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Update("total", total).Error; err != nil {
				return err
			}
		}
		order.Total = total
		order.Lines = lines
		return nil
	})
}

// UpdateOrder patches table, waiter or comments. Status changes go through
// CloseOrder only.
func (s *Store) UpdateOrder(id uint, patch OrderPatch) (*models.Order, error) {
	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var current models.Order
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", id, ErrNotFound)
			}
			return err
		}

		updates := map[string]interface{}{}
		if patch.TableID != nil {
			if err := tx.First(&models.Table{}, *patch.TableID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("table %d: %w", *patch.TableID, ErrNotFound)
				}
				return err
			}
			updates["table_id"] = *patch.TableID
		}
		if patch.WaiterID != nil {
			if err := tx.First(&models.Waiter{}, *patch.WaiterID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("waiter %d: %w", *patch.WaiterID, ErrNotFound)
				}
				return err
			}
			updates["waiter_id"] = *patch.WaiterID
		}
		if patch.Comments != nil {
			updates["comments"] = *patch.Comments
		}
		if len(updates) > 0 {
			if err := tx.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err = s.GetOrder(id)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CloseOrder transitions Open -> Closed exactly once. The total is recomputed
// from the current lines rather than trusting the maintained value.
func (s *Store) CloseOrder(id uint, comments *string) (*models.Order, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", id, ErrNotFound)
			}
			return err
		}
		if order.Status == models.OrderStatusClosed {
			return fmt.Errorf("order %d: %w", id, ErrAlreadyClosed)
		}

		var sum struct {
			Total decimal.Decimal
		}
		if err := tx.Model(&models.OrderLine{}).Where("order_id = ?", id).
			Select("COALESCE(SUM(subtotal), 0) AS total").Scan(&sum).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"total":     sum.Total,
			"status":    models.OrderStatusClosed,
			"closed_at": time.Now().UTC(),
		}
		if comments != nil {
			updates["comments"] = *comments
		}
		return tx.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrder(id)
}

// DeleteOrder removes an order together with its lines.
func (s *Store) DeleteOrder(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Order{}, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", id, ErrNotFound)
			}
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}
