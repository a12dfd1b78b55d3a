package dashboard

import (
	"math"

	"opsboard/m/domain"
)

// Metrics are the headline figures of the dashboard panel.
type Metrics struct {
	AverageEfficiency int `json:"average_efficiency"`
	TotalProcessed    int `json:"total_processed"`
	ActiveOrders      int `json:"active_orders"`
	LowStockItems     int `json:"low_stock_items"`
}

// LineStatus summarises the orders running on one production line.
type LineStatus struct {
	Line       domain.Line `json:"line"`
	Orders     int         `json:"orders"`
	Progress   int         `json:"progress"`
	Efficiency int         `json:"efficiency"`
	Running    bool        `json:"running"`
}

func computeMetrics(orders []domain.ProductionOrder, inventory []domain.InventoryItem) Metrics {
	var m Metrics
	var efficiency float64
	for _, order := range orders {
		m.TotalProcessed += order.Progress
		efficiency += order.Efficiency
		if order.Active() {
			m.ActiveOrders++
		}
	}
	if len(orders) > 0 {
		m.AverageEfficiency = int(math.Round(efficiency / float64(len(orders))))
	}
	m.LowStockItems = len(lowStockAlerts(inventory))
	return m
}

func lineStatuses(orders []domain.ProductionOrder) []LineStatus {
	out := make([]LineStatus, 0, len(domain.Lines))
	for _, line := range domain.Lines {
		status := LineStatus{Line: line}
		var progress, efficiency float64
		for _, order := range orders {
			if order.Line != line {
				continue
			}
			status.Orders++
			progress += float64(order.Progress)
			efficiency += order.Efficiency
			if order.Active() {
				status.Running = true
			}
		}
		if status.Orders > 0 {
			status.Progress = int(math.Round(progress / float64(status.Orders)))
			status.Efficiency = int(math.Round(efficiency / float64(status.Orders)))
		}
		out = append(out, status)
	}
	return out
}

func lowStockAlerts(inventory []domain.InventoryItem) []domain.InventoryItem {
	alerts := []domain.InventoryItem{}
	for _, item := range inventory {
		if item.Status == domain.StockLow || item.Status == domain.StockOut {
			alerts = append(alerts, item)
		}
	}
	return alerts
}
