package store

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-api/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Category{},
		&models.Waiter{},
		&models.Table{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderLine{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func seedCategory(t *testing.T, s *Store, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := s.CreateCategory(category); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}

func seedMenuItem(t *testing.T, s *Store, categoryID uint, name, price string, active bool) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		Name:       name,
		Price:      dec(t, price),
		CategoryID: categoryID,
		Active:     active,
	}
	if err := s.CreateMenuItem(item); err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return item
}

func seedTable(t *testing.T, s *Store, number, capacity int) *models.Table {
	t.Helper()
	table := &models.Table{Number: number, Capacity: capacity}
	if err := s.CreateTable(table); err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return table
}

func seedWaiter(t *testing.T, s *Store, name string) *models.Waiter {
	t.Helper()
	waiter := &models.Waiter{Name: name}
	if err := s.CreateWaiter(waiter); err != nil {
		t.Fatalf("seed waiter: %v", err)
	}
	return waiter
}

// seedOrder creates an empty open order with the usual fixtures around it.
func seedOrder(t *testing.T, s *Store) (*models.Order, *models.MenuItem) {
	t.Helper()
	category := seedCategory(t, s, "Mains")
	item := seedMenuItem(t, s, category.ID, "Tacos", "10.00", true)
	table := seedTable(t, s, 1, 4)
	waiter := seedWaiter(t, s, "Ana")

	order := &models.Order{TableID: table.ID, WaiterID: waiter.ID}
	if err := s.CreateOrder(order, nil); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order, item
}

// resumTotal recomputes an order's total from its lines, bypassing the
// maintained column.
func resumTotal(t *testing.T, s *Store, orderID uint) decimal.Decimal {
	t.Helper()
	lines, err := s.ListOrderLines(orderID)
	if err != nil {
		t.Fatalf("list order lines: %v", err)
	}
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal)
	}
	return total
}

// assertLedger checks the core invariant: the maintained total equals a full
// recompute over the current lines.
func assertLedger(t *testing.T, s *Store, orderID uint) {
	t.Helper()
	order, err := s.GetOrder(orderID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	want := resumTotal(t, s, orderID)
	if !order.Total.Equal(want) {
		t.Fatalf("maintained total %s diverged from recomputed total %s", order.Total, want)
	}
}
