package store

import (
	"context"
	"testing"

	"opsboard/m/domain"
	"opsboard/m/internal/database"
	"opsboard/m/internal/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func item(id, code string, stock, min int64) domain.InventoryItem {
	it := domain.InventoryItem{
		ID:          id,
		Code:        code,
		Description: "item " + code,
		Category:    domain.CategoryRawMaterial,
		Stock:       stock,
		MinStock:    min,
	}
	it.RefreshStatus()
	return it
}

func TestInventoryKeepsInsertionOrder(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, it := range []domain.InventoryItem{item("INV-3", "C", 1, 0), item("INV-1", "A", 1, 0), item("INV-2", "B", 1, 0)} {
		if err := st.AppendInventory(ctx, it); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	items, err := st.Inventory(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := []string{items[0].ID, items[1].ID, items[2].ID}
	want := []string{"INV-3", "INV-1", "INV-2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestFindInventory(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_ = st.AppendInventory(ctx, item("INV-1", "MAT-001", 25, 30))

	found, ok, err := st.FindInventory(ctx, "INV-1")
	if err != nil || !ok {
		t.Fatalf("expected item, ok=%v err=%v", ok, err)
	}
	if found.Status != domain.StockLow || found.Category != domain.CategoryRawMaterial {
		t.Errorf("unexpected item %+v", found)
	}

	_, ok, err = st.FindInventory(ctx, "INV-404")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected missing item")
	}
}

func TestReplaceInventoryKeepsPosition(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_ = st.AppendInventory(ctx, item("INV-1", "A", 1, 0))
	_ = st.AppendInventory(ctx, item("INV-2", "B", 1, 0))

	updated := item("INV-1", "A2", 5, 10)
	ok, err := st.ReplaceInventory(ctx, updated)
	if err != nil || !ok {
		t.Fatalf("replace: ok=%v err=%v", ok, err)
	}

	items, _ := st.Inventory(ctx)
	if items[0].ID != "INV-1" || items[0].Code != "A2" || items[0].Status != domain.StockLow {
		t.Errorf("unexpected first item %+v", items[0])
	}

	ok, err = st.ReplaceInventory(ctx, item("INV-404", "X", 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("replace of a missing id must report false")
	}
}

func TestRemoveInventory(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_ = st.AppendInventory(ctx, item("INV-1", "A", 1, 0))
	_ = st.AppendInventory(ctx, item("INV-2", "B", 1, 0))

	ok, err := st.RemoveInventory(ctx, "INV-1")
	if err != nil || !ok {
		t.Fatalf("remove: ok=%v err=%v", ok, err)
	}
	items, _ := st.Inventory(ctx)
	if len(items) != 1 || items[0].ID != "INV-2" {
		t.Errorf("unexpected items after remove %+v", items)
	}

	ok, _ = st.RemoveInventory(ctx, "INV-1")
	if ok {
		t.Error("second remove must report false")
	}
}

func TestDuplicateIDsAreNotRejected(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	if err := st.AppendInventory(ctx, item("INV-1", "A", 1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := st.AppendInventory(ctx, item("INV-1", "B", 1, 0)); err != nil {
		t.Fatalf("duplicate ids are caller discipline, got %v", err)
	}
	found, _, _ := st.FindInventory(ctx, "INV-1")
	if found.Code != "A" {
		t.Errorf("find must return the first match, got %s", found.Code)
	}
}

func TestProductionOrdersRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	orders := []domain.ProductionOrder{
		{ID: "ORD-1", Product: "Widget A", Line: domain.LineA, Progress: 75, Efficiency: 85},
		{ID: "ORD-2", Product: "Widget B", Line: domain.LineB, Quantity: 10, Priority: domain.PriorityHigh},
	}
	for _, o := range orders {
		if err := st.AppendProductionOrder(ctx, o); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	orders[0].Progress = 80
	orders[0].Efficiency = 86.5
	if err := st.ReplaceProductionOrders(ctx, orders); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := st.ProductionOrders(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got[0].Progress != 80 || got[0].Efficiency != 86.5 {
		t.Errorf("unexpected first order %+v", got[0])
	}
	if got[1].Priority != domain.PriorityHigh || got[1].Quantity != 10 {
		t.Errorf("unexpected second order %+v", got[1])
	}
}

func TestAppendOnlyCollections(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := st.AppendShipment(ctx, domain.Shipment{ID: "ENT-1", Destination: "X", Status: domain.ShipmentPending, Date: "2024-02-01", Notes: "fragile"}); err != nil {
		t.Fatal(err)
	}
	if err := st.AppendInspection(ctx, domain.QualityInspection{ID: "INS-1", Product: "Widget A", Status: domain.InspectionApproved, Date: "2024-01-15"}); err != nil {
		t.Fatal(err)
	}
	if err := st.AppendMaintenanceTask(ctx, domain.MaintenanceTask{ID: "MNT-1", Equipment: "Motor", Date: "2024-01-15", Type: domain.MaintenancePreventive, Status: domain.MaintenanceScheduled}); err != nil {
		t.Fatal(err)
	}

	shipments, _ := st.Shipments(ctx)
	if len(shipments) != 1 || shipments[0].Notes != "fragile" {
		t.Errorf("unexpected shipments %+v", shipments)
	}
	inspections, _ := st.Inspections(ctx)
	if len(inspections) != 1 || inspections[0].Status != domain.InspectionApproved {
		t.Errorf("unexpected inspections %+v", inspections)
	}
	tasks, _ := st.MaintenanceTasks(ctx)
	if len(tasks) != 1 || tasks[0].Type != domain.MaintenancePreventive {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}
