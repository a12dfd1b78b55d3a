package seed

import (
	"context"
	"fmt"

	"opsboard/m/domain"
	"opsboard/m/internal/store"
)

// Dataset is the initial content of every collection.
type Dataset struct {
	Inventory   []domain.InventoryItem
	Shipments   []domain.Shipment
	Orders      []domain.ProductionOrder
	Inspections []domain.QualityInspection
	Maintenance []domain.MaintenanceTask
}

// Sample returns the demonstration dataset the dashboard starts with.
func Sample() Dataset {
	return Dataset{
		Inventory: []domain.InventoryItem{
			{ID: "INV-001", Code: "MAT-001", Description: "Material A - Acero Inoxidable", Category: domain.CategoryRawMaterial, Stock: 150, MinStock: 50},
			{ID: "INV-002", Code: "PROD-001", Description: "Producto Terminado A", Category: domain.CategoryFinishedGood, Stock: 25, MinStock: 30},
			{ID: "INV-003", Code: "HERR-001", Description: "Herramienta de Corte", Category: domain.CategoryTooling, Stock: 8, MinStock: 10},
			{ID: "INV-004", Code: "EQ-001", Description: "Equipo de Medición", Category: domain.CategoryEquipment, Stock: 3, MinStock: 5},
			{ID: "INV-005", Code: "MAT-002", Description: "Material B - Aluminio", Category: domain.CategoryRawMaterial, Stock: 200, MinStock: 75},
		},
		Shipments: []domain.Shipment{
			{ID: "ENT-001", Destination: "Cliente A - Zona Norte", Status: domain.ShipmentPending, Date: "2024-01-15"},
			{ID: "ENT-002", Destination: "Cliente B - Zona Sur", Status: domain.ShipmentInTransit, Date: "2024-01-15"},
			{ID: "ENT-003", Destination: "Cliente C - Zona Este", Status: domain.ShipmentDelivered, Date: "2024-01-14"},
		},
		Orders: []domain.ProductionOrder{
			{ID: "ORD-001", Product: "Widget A", Line: domain.LineA, Progress: 75, Efficiency: 85},
			{ID: "ORD-002", Product: "Widget B", Line: domain.LineB, Progress: 45, Efficiency: 92},
			{ID: "ORD-003", Product: "Widget C", Line: domain.LineC, Progress: 0, Efficiency: 0},
		},
		Inspections: []domain.QualityInspection{
			{ID: "INS-001", Product: "Widget A", Status: domain.InspectionApproved, Date: "2024-01-15"},
			{ID: "INS-002", Product: "Widget B", Status: domain.InspectionRejected, Date: "2024-01-15"},
			{ID: "INS-003", Product: "Widget C", Status: domain.InspectionPending, Date: "2024-01-15"},
		},
		Maintenance: []domain.MaintenanceTask{
			{ID: "MNT-001", Equipment: "Línea A - Motor Principal", Date: "2024-01-15", Type: domain.MaintenancePreventive, Status: domain.MaintenanceScheduled},
			{ID: "MNT-002", Equipment: "Línea B - Sistema Hidráulico", Date: "2024-01-20", Type: domain.MaintenanceCorrective, Status: domain.MaintenanceScheduled},
			{ID: "MNT-003", Equipment: "Línea C", Date: "2024-01-14", Type: domain.MaintenanceCorrective, Status: domain.MaintenanceInProgress},
		},
	}
}

// Load appends the dataset to the store. Inventory statuses are derived
// again rather than trusted.
func Load(ctx context.Context, st *store.Store, data Dataset) error {
	for _, item := range data.Inventory {
		item.RefreshStatus()
		if err := st.AppendInventory(ctx, item); err != nil {
			return fmt.Errorf("seed inventory: %w", err)
		}
	}
	for _, shipment := range data.Shipments {
		if err := st.AppendShipment(ctx, shipment); err != nil {
			return fmt.Errorf("seed shipments: %w", err)
		}
	}
	for _, order := range data.Orders {
		if err := st.AppendProductionOrder(ctx, order); err != nil {
			return fmt.Errorf("seed production orders: %w", err)
		}
	}
	for _, inspection := range data.Inspections {
		if err := st.AppendInspection(ctx, inspection); err != nil {
			return fmt.Errorf("seed inspections: %w", err)
		}
	}
	for _, task := range data.Maintenance {
		if err := st.AppendMaintenanceTask(ctx, task); err != nil {
			return fmt.Errorf("seed maintenance: %w", err)
		}
	}
	return nil
}
