package view

import (
	"fmt"

	"opsboard/m/domain"
)

// InventoryRow is one line of the inventory table. ID binds the edit and
// delete controls.
type InventoryRow struct {
	ID            string
	Code          string
	Description   string
	Category      string
	CategoryLabel string
	Stock         int64
	MinStock      int64
	Status        string
	StatusLabel   string
	BadgeClass    string
}

type ShipmentRow struct {
	ID          string
	Destination string
	Date        string
	Notes       string
	Status      string
	StatusLabel string
	BadgeClass  string
}

type OrderRow struct {
	ID            string
	Product       string
	Line          string
	Progress      int
	Efficiency    string
	Quantity      int64
	PriorityLabel string
}

type InspectionRow struct {
	ID          string
	Product     string
	Date        string
	StatusLabel string
	BadgeClass  string
}

type MaintenanceRow struct {
	ID          string
	Equipment   string
	Date        string
	TypeLabel   string
	Description string
	StatusLabel string
	BadgeClass  string
}

func badge(status string) string { return "status-badge " + status }

// InventoryRows builds one row per item, in order.
func InventoryRows(items []domain.InventoryItem) []InventoryRow {
	rows := make([]InventoryRow, len(items))
	for i, item := range items {
		rows[i] = InventoryRow{
			ID:            item.ID,
			Code:          item.Code,
			Description:   item.Description,
			Category:      string(item.Category),
			CategoryLabel: CategoryLabel(item.Category),
			Stock:         item.Stock,
			MinStock:      item.MinStock,
			Status:        string(item.Status),
			StatusLabel:   StockStatusLabel(item.Status),
			BadgeClass:    badge(string(item.Status)),
		}
	}
	return rows
}

func ShipmentRows(shipments []domain.Shipment) []ShipmentRow {
	rows := make([]ShipmentRow, len(shipments))
	for i, s := range shipments {
		rows[i] = ShipmentRow{
			ID:          s.ID,
			Destination: s.Destination,
			Date:        s.Date,
			Notes:       s.Notes,
			Status:      string(s.Status),
			StatusLabel: ShipmentStatusLabel(s.Status),
			BadgeClass:  badge(string(s.Status)),
		}
	}
	return rows
}

func OrderRows(orders []domain.ProductionOrder) []OrderRow {
	rows := make([]OrderRow, len(orders))
	for i, o := range orders {
		rows[i] = OrderRow{
			ID:            o.ID,
			Product:       o.Product,
			Line:          string(o.Line),
			Progress:      o.Progress,
			Efficiency:    fmt.Sprintf("%.1f%%", o.Efficiency),
			Quantity:      o.Quantity,
			PriorityLabel: PriorityLabel(o.Priority),
		}
	}
	return rows
}

func InspectionRows(inspections []domain.QualityInspection) []InspectionRow {
	rows := make([]InspectionRow, len(inspections))
	for i, in := range inspections {
		rows[i] = InspectionRow{
			ID:          in.ID,
			Product:     in.Product,
			Date:        in.Date,
			StatusLabel: InspectionStatusLabel(in.Status),
			BadgeClass:  badge(string(in.Status)),
		}
	}
	return rows
}

func MaintenanceRows(tasks []domain.MaintenanceTask) []MaintenanceRow {
	rows := make([]MaintenanceRow, len(tasks))
	for i, t := range tasks {
		rows[i] = MaintenanceRow{
			ID:          t.ID,
			Equipment:   t.Equipment,
			Date:        t.Date,
			TypeLabel:   MaintenanceTypeLabel(t.Type),
			Description: t.Description,
			StatusLabel: MaintenanceStatusLabel(t.Status),
			BadgeClass:  badge(string(t.Status)),
		}
	}
	return rows
}
