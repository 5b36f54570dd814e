package store

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restaurant-api/internal/models"
)

type OrderLinePatch struct {
	Quantity  *int             `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Status    *string          `json:"status"`
}

// prepareLine validates a new line and derives its subtotal. The referenced
// product must exist and be active at creation time.
func prepareLine(tx *gorm.DB, line *models.OrderLine) error {
	if line.Quantity <= 0 {
		return fmt.Errorf("quantity must be greater than zero: %w", ErrInvalidValue)
	}
	if line.UnitPrice.IsNegative() {
		return fmt.Errorf("unit price must not be negative: %w", ErrInvalidValue)
	}
	if line.Status == "" {
		line.Status = models.LineStatusPending
	}
	if !models.ValidLineStatus(line.Status) {
		return fmt.Errorf("order line status %q: %w", line.Status, ErrInvalidEnum)
	}

	var product models.MenuItem
	if err := tx.First(&product, line.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("menu item %d: %w", line.ProductID, ErrNotFound)
		}
		return err
	}
	if !product.Active {
		return fmt.Errorf("menu item %q: %w", product.Name, ErrInactiveProduct)
	}

	line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
	return nil
}

// addToOrderTotal applies a relative delta to the parent order's total in a
// single UPDATE, so concurrent line mutations cannot lose each other's writes.
func addToOrderTotal(tx *gorm.DB, orderID uint, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	return tx.Model(&models.Order{}).Where("id = ?", orderID).
		Update("total", gorm.Expr("total + ?", delta)).Error
}

func (s *Store) GetOrderLine(id uint) (*models.OrderLine, error) {
	var line models.OrderLine
	if err := s.db.First(&line, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order line %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &line, nil
}

// ListOrderLines returns all lines of one order, rejecting unknown orders.
func (s *Store) ListOrderLines(orderID uint) ([]models.OrderLine, error) {
	if err := s.db.First(&models.Order{}, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, err
	}

	var lines []models.OrderLine
	if err := s.db.Where("order_id = ?", orderID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// CreateOrderLine adds a line to an existing order and adds its subtotal to
// the order's total within the same transaction.
func (s *Store) CreateOrderLine(line *models.OrderLine) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Order{}, line.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", line.OrderID, ErrNotFound)
			}
			return err
		}
		if err := prepareLine(tx, line); err != nil {
			return err
		}
		if err := tx.Create(line).Error; err != nil {
			return err
		}
		return addToOrderTotal(tx, line.OrderID, line.Subtotal)
	})
}

// UpdateOrderLine patches a line. When quantity or unit price changes, the
// subtotal is recomputed and only the delta is applied to the order's total.
func (s *Store) UpdateOrderLine(id uint, patch OrderLinePatch) (*models.OrderLine, error) {
	var line models.OrderLine
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&line, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order line %d: %w", id, ErrNotFound)
			}
			return err
		}

		oldSubtotal := line.Subtotal
		updates := map[string]interface{}{}

		if patch.Quantity != nil {
			if *patch.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %w", ErrInvalidValue)
			}
			line.Quantity = *patch.Quantity
			updates["quantity"] = *patch.Quantity
		}
		if patch.UnitPrice != nil {
			if patch.UnitPrice.IsNegative() {
				return fmt.Errorf("unit price must not be negative: %w", ErrInvalidValue)
			}
			line.UnitPrice = *patch.UnitPrice
			updates["unit_price"] = *patch.UnitPrice
		}
		if patch.Status != nil {
			if !models.ValidLineStatus(*patch.Status) {
				return fmt.Errorf("order line status %q: %w", *patch.Status, ErrInvalidEnum)
			}
			line.Status = *patch.Status
			updates["status"] = *patch.Status
		}
		if len(updates) == 0 {
			return nil
		}

		if patch.Quantity != nil || patch.UnitPrice != nil {
			line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			updates["subtotal"] = line.Subtotal
		}

		if err := tx.Model(&models.OrderLine{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return addToOrderTotal(tx, line.OrderID, line.Subtotal.Sub(oldSubtotal))
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// DeleteOrderLine removes a line and subtracts its subtotal from the order.
func (s *Store) DeleteOrderLine(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var line models.OrderLine
		if err := tx.First(&line, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order line %d: %w", id, ErrNotFound)
			}
			return err
		}
		if err := tx.Delete(&models.OrderLine{}, id).Error; err != nil {
			return err
		}
		return addToOrderTotal(tx, line.OrderID, line.Subtotal.Neg())
	})
}
