package view

import "opsboard/m/domain"

var (
	categoryLabels = map[string]string{
		string(domain.CategoryRawMaterial):  "Materia Prima",
		string(domain.CategoryFinishedGood): "Producto Terminado",
		string(domain.CategoryTooling):      "Herramientas",
		string(domain.CategoryEquipment):    "Equipos",
	}
	stockStatusLabels = map[string]string{
		string(domain.StockNormal): "Normal",
		string(domain.StockLow):    "Stock Bajo",
		string(domain.StockOut):    "Sin Stock",
	}
	shipmentStatusLabels = map[string]string{
		string(domain.ShipmentPending):   "Pendiente",
		string(domain.ShipmentInTransit): "En Tránsito",
		string(domain.ShipmentDelivered): "Entregado",
	}
	inspectionStatusLabels = map[string]string{
		string(domain.InspectionApproved): "Aprobado",
		string(domain.InspectionRejected): "Rechazado",
		string(domain.InspectionPending):  "Pendiente",
	}
	maintenanceTypeLabels = map[string]string{
		string(domain.MaintenancePreventive): "Preventivo",
		string(domain.MaintenanceCorrective): "Correctivo",
		string(domain.MaintenancePredictive): "Predictivo",
	}
	maintenanceStatusLabels = map[string]string{
		string(domain.MaintenanceScheduled):  "Programado",
		string(domain.MaintenanceInProgress): "En Progreso",
	}
	priorityLabels = map[string]string{
		string(domain.PriorityNormal): "Normal",
		string(domain.PriorityHigh):   "Alta",
		string(domain.PriorityUrgent): "Urgente",
	}
	tabLabels = map[string]string{
		"dashboard":   "Dashboard",
		"inventory":   "Inventario",
		"logistics":   "Logística",
		"production":  "Producción",
		"quality":     "Calidad",
		"maintenance": "Mantenimiento",
	}
)

// label looks key up in table. Unknown keys are shown as they are.
func label(table map[string]string, key string) string {
	if l, ok := table[key]; ok {
		return l
	}
	return key
}

func CategoryLabel(c domain.Category) string { return label(categoryLabels, string(c)) }

func StockStatusLabel(s domain.StockStatus) string { return label(stockStatusLabels, string(s)) }

func ShipmentStatusLabel(s domain.ShipmentStatus) string {
	return label(shipmentStatusLabels, string(s))
}

func InspectionStatusLabel(s domain.InspectionStatus) string {
	return label(inspectionStatusLabels, string(s))
}

func MaintenanceTypeLabel(t domain.MaintenanceType) string {
	return label(maintenanceTypeLabels, string(t))
}

func MaintenanceStatusLabel(s domain.MaintenanceStatus) string {
	return label(maintenanceStatusLabels, string(s))
}

func PriorityLabel(p domain.Priority) string { return label(priorityLabels, string(p)) }
