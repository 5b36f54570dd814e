package store

import (
	"errors"
	"testing"
	"time"

	"restaurant-api/internal/models"
)

func TestCreateTableCapacityBounds(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateTable(&models.Table{Number: 1, Capacity: 0})
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("capacity 0 error = %v, want ErrInvalidValue", err)
	}

	table := &models.Table{Number: 1, Capacity: 1}
	if err := s.CreateTable(table); err != nil {
		t.Fatalf("capacity 1: %v", err)
	}
	if table.Status != models.TableStatusFree {
		t.Errorf("default status = %q, want %q", table.Status, models.TableStatusFree)
	}
}

func TestCreateTableStatusEnum(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateTable(&models.Table{Number: 1, Capacity: 4, Status: "Broken"})
	if !errors.Is(err, ErrInvalidEnum) {
		t.Fatalf("bad status error = %v, want ErrInvalidEnum", err)
	}

	if err := s.CreateTable(&models.Table{Number: 1, Capacity: 4, Status: models.TableStatusReserved}); err != nil {
		t.Fatalf("reserved status: %v", err)
	}
}

func TestCreateTableDuplicateNumber(t *testing.T) {
	s := newTestStore(t)
	seedTable(t, s, 7, 4)

	err := s.CreateTable(&models.Table{Number: 7, Capacity: 2})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate number error = %v, want ErrConflict", err)
	}
}

func TestUpdateTablePatch(t *testing.T) {
	s := newTestStore(t)
	table := seedTable(t, s, 3, 4)

	occupied := models.TableStatusOccupied
	updated, err := s.UpdateTable(table.ID, TablePatch{Status: &occupied})
	if err != nil {
		t.Fatalf("UpdateTable: %v", err)
	}
	if updated.Status != occupied {
		t.Errorf("status = %q, want %q", updated.Status, occupied)
	}
	if updated.Capacity != 4 || updated.Number != 3 {
		t.Errorf("untouched fields changed: number=%d capacity=%d", updated.Number, updated.Capacity)
	}

	zero := 0
	if _, err := s.UpdateTable(table.ID, TablePatch{Capacity: &zero}); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("capacity 0 error = %v, want ErrInvalidValue", err)
	}
}

func TestCategoryUniqueName(t *testing.T) {
	s := newTestStore(t)
	seedCategory(t, s, "Drinks")

	err := s.CreateCategory(&models.Category{Name: "Drinks"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate name error = %v, want ErrConflict", err)
	}

	err = s.CreateCategory(&models.Category{Name: ""})
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("empty name error = %v, want ErrInvalidValue", err)
	}
}

func TestUpdateCategoryPartial(t *testing.T) {
	s := newTestStore(t)
	category := seedCategory(t, s, "Drinks")

	description := "cold and hot"
	updated, err := s.UpdateCategory(category.ID, CategoryPatch{Description: &description})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if updated.Name != "Drinks" {
		t.Errorf("name changed to %q on description-only patch", updated.Name)
	}
	if updated.Description != description {
		t.Errorf("description = %q, want %q", updated.Description, description)
	}
}

func TestDeleteCategoryConflict(t *testing.T) {
	s := newTestStore(t)
	category := seedCategory(t, s, "Mains")
	seedMenuItem(t, s, category.ID, "Tacos", "10.00", true)

	if err := s.DeleteCategory(category.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("delete with menu items error = %v, want ErrConflict", err)
	}

	empty := seedCategory(t, s, "Empty")
	if err := s.DeleteCategory(empty.ID); err != nil {
		t.Fatalf("delete empty category: %v", err)
	}
	if _, err := s.GetCategory(empty.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetCategory after delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteMenuItemConflict(t *testing.T) {
	s := newTestStore(t)
	order, item := seedOrder(t, s)

	line := &models.OrderLine{OrderID: order.ID, ProductID: item.ID, Quantity: 1, UnitPrice: dec(t, "10.00")}
	if err := s.CreateOrderLine(line); err != nil {
		t.Fatalf("CreateOrderLine: %v", err)
	}

	if err := s.DeleteMenuItem(item.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("delete referenced item error = %v, want ErrConflict", err)
	}

	category := seedCategory(t, s, "Sides")
	unreferenced := seedMenuItem(t, s, category.ID, "Chips", "3.00", true)
	if err := s.DeleteMenuItem(unreferenced.ID); err != nil {
		t.Fatalf("delete unreferenced item: %v", err)
	}
}

func TestDeleteTableAndWaiterConflicts(t *testing.T) {
	s := newTestStore(t)
	order, _ := seedOrder(t, s)

	if err := s.DeleteTable(order.TableID); !errors.Is(err, ErrConflict) {
		t.Fatalf("delete table with orders error = %v, want ErrConflict", err)
	}
	if err := s.DeleteWaiter(order.WaiterID); !errors.Is(err, ErrConflict) {
		t.Fatalf("delete waiter with orders error = %v, want ErrConflict", err)
	}

	// Once the order is gone both deletes succeed.
	if err := s.DeleteOrder(order.ID); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}
	if err := s.DeleteTable(order.TableID); err != nil {
		t.Fatalf("DeleteTable: %v", err)
	}
	if err := s.DeleteWaiter(order.WaiterID); err != nil {
		t.Fatalf("DeleteWaiter: %v", err)
	}
}

func TestCreateMenuItemValidation(t *testing.T) {
	s := newTestStore(t)
	category := seedCategory(t, s, "Mains")

	err := s.CreateMenuItem(&models.MenuItem{Name: "Tacos", Price: dec(t, "-1.00"), CategoryID: category.ID})
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("negative price error = %v, want ErrInvalidValue", err)
	}

	err = s.CreateMenuItem(&models.MenuItem{Name: "Tacos", Price: dec(t, "1.00"), CategoryID: 999})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown category error = %v, want ErrNotFound", err)
	}

	free := &models.MenuItem{Name: "Water", Price: dec(t, "0.00"), CategoryID: category.ID, Active: true}
	if err := s.CreateMenuItem(free); err != nil {
		t.Fatalf("zero price: %v", err)
	}
}

func TestListMenuItemsFilters(t *testing.T) {
	s := newTestStore(t)
	mains := seedCategory(t, s, "Mains")
	drinks := seedCategory(t, s, "Drinks")
	seedMenuItem(t, s, mains.ID, "Tacos", "10.00", true)
	seedMenuItem(t, s, drinks.ID, "Agua", "2.00", true)
	seedMenuItem(t, s, drinks.ID, "Old Soda", "2.00", false)

	items, total, err := s.ListMenuItems(0, 20, &drinks.ID, nil)
	if err != nil {
		t.Fatalf("ListMenuItems: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("category filter: total=%d len=%d, want 2/2", total, len(items))
	}

	active := true
	items, total, err = s.ListMenuItems(0, 20, &drinks.ID, &active)
	if err != nil {
		t.Fatalf("ListMenuItems: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Name != "Agua" {
		t.Errorf("active filter: total=%d len=%d", total, len(items))
	}
}

func TestWaiterHireDateDefault(t *testing.T) {
	s := newTestStore(t)

	waiter := &models.Waiter{Name: "Ana"}
	if err := s.CreateWaiter(waiter); err != nil {
		t.Fatalf("CreateWaiter: %v", err)
	}

	today := time.Now().UTC()
	if waiter.HireDate.Year() != today.Year() || waiter.HireDate.YearDay() != today.YearDay() {
		t.Errorf("hire date = %v, want today", waiter.HireDate)
	}

	explicit := &models.Waiter{Name: "Luis", HireDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)}
	if err := s.CreateWaiter(explicit); err != nil {
		t.Fatalf("CreateWaiter: %v", err)
	}
	if !explicit.HireDate.Equal(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("explicit hire date overwritten: %v", explicit.HireDate)
	}
}

func TestUpdateWaiterPartial(t *testing.T) {
	s := newTestStore(t)
	waiter := seedWaiter(t, s, "Ana")

	phone := "555-0101"
	updated, err := s.UpdateWaiter(waiter.ID, WaiterPatch{Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateWaiter: %v", err)
	}
	if updated.Name != "Ana" || updated.Phone != phone {
		t.Errorf("patch result name=%q phone=%q", updated.Name, updated.Phone)
	}

	// Present empty string clears the field, unlike an absent one.
	empty := ""
	cleared, err := s.UpdateWaiter(waiter.ID, WaiterPatch{Phone: &empty})
	if err != nil {
		t.Fatalf("UpdateWaiter: %v", err)
	}
	if cleared.Phone != "" {
		t.Errorf("phone = %q after clearing", cleared.Phone)
	}
}

func TestPagination(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		seedCategory(t, s, name)
	}

	page, total, err := s.ListCategories(2, 2)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(page) != 2 {
		t.Errorf("page size = %d, want 2", len(page))
	}
}
