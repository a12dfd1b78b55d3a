package view

import (
	"strconv"

	"opsboard/m/domain"
	"opsboard/m/internal/dashboard"
	"opsboard/m/internal/notify"
)

type TabLink struct {
	Key    string
	Label  string
	Active bool
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type LineRow struct {
	Line       string
	Orders     int
	Progress   int
	Efficiency int
	Running    bool
}

type ToastView struct {
	ID      string
	Message string
	Kind    string
	Leaving bool
}

// ModalView is the open dialog with its fields prefilled.
type ModalView struct {
	Kind   string
	Open   bool
	Title  string
	ItemID string
	Item   InventoryRow
	Values map[string]string
	Errors map[string]string

	Categories       []Option
	Lines            []Option
	Priorities       []Option
	MaintenanceTypes []Option
}

// Page is everything the templates need for one render of the session.
type Page struct {
	Active     string
	Clock      string
	Generation uint64
	Tabs       []TabLink

	Search     string
	Categories []Option

	Metrics dashboard.Metrics
	Lines   []LineRow
	Alerts  []InventoryRow

	Inventory   []InventoryRow
	Shipments   []ShipmentRow
	Orders      []OrderRow
	Inspections []InspectionRow
	Maintenance []MaintenanceRow

	Modal  ModalView
	Toasts []ToastView
}

var modalTitles = map[dashboard.ModalKind]string{
	dashboard.ModalAddItem:        "Agregar Item",
	dashboard.ModalEditItem:       "Editar Item",
	dashboard.ModalDeleteItem:     "Eliminar Item",
	dashboard.ModalAddShipment:    "Nuevo Envío",
	dashboard.ModalAddOrder:       "Nueva Orden de Producción",
	dashboard.ModalAddMaintenance: "Programar Mantenimiento",
}

// NewPage turns a controller snapshot into template data.
func NewPage(snap dashboard.Snapshot) Page {
	p := Page{
		Active:      string(snap.Active),
		Clock:       snap.Clock,
		Generation:  snap.Generation,
		Search:      snap.Filter.Search,
		Categories:  categoryOptions(string(snap.Filter.Category)),
		Metrics:     snap.Metrics,
		Alerts:      InventoryRows(snap.Alerts),
		Inventory:   InventoryRows(snap.Inventory),
		Shipments:   ShipmentRows(snap.Shipments),
		Orders:      OrderRows(snap.Orders),
		Inspections: InspectionRows(snap.Inspections),
		Maintenance: MaintenanceRows(snap.Maintenance),
		Modal:       newModalView(snap.Modal),
		Toasts:      toastViews(snap.Toasts),
	}
	for _, tab := range dashboard.Tabs {
		p.Tabs = append(p.Tabs, TabLink{Key: string(tab), Label: label(tabLabels, string(tab)), Active: tab == snap.Active})
	}
	for _, l := range snap.Lines {
		p.Lines = append(p.Lines, LineRow{Line: string(l.Line), Orders: l.Orders, Progress: l.Progress, Efficiency: l.Efficiency, Running: l.Running})
	}
	return p
}

func newModalView(m dashboard.Modal) ModalView {
	v := ModalView{
		Kind:   string(m.Kind),
		Open:   m.Open(),
		Title:  modalTitles[m.Kind],
		ItemID: m.Item.ID,
		Values: m.Values,
		Errors: make(map[string]string, len(m.Errors)),
	}
	if m.Item.ID != "" {
		v.Item = InventoryRows([]domain.InventoryItem{m.Item})[0]
	}
	if v.Values == nil {
		v.Values = map[string]string{}
		if m.Kind == dashboard.ModalEditItem {
			v.Values = map[string]string{
				"code":        m.Item.Code,
				"description": m.Item.Description,
				"category":    string(m.Item.Category),
				"stock":       strconv.FormatInt(m.Item.Stock, 10),
				"min_stock":   strconv.FormatInt(m.Item.MinStock, 10),
			}
		}
	}
	for _, fe := range m.Errors {
		v.Errors[fe.Field] = fe.Message
	}

	v.Categories = categoryOptions(v.Values["category"])
	for _, l := range domain.Lines {
		v.Lines = append(v.Lines, Option{Value: string(l), Label: "Línea " + string(l), Selected: string(l) == v.Values["line"]})
	}
	for _, p := range []domain.Priority{domain.PriorityNormal, domain.PriorityHigh, domain.PriorityUrgent} {
		v.Priorities = append(v.Priorities, Option{Value: string(p), Label: PriorityLabel(p), Selected: string(p) == v.Values["priority"]})
	}
	for _, t := range []domain.MaintenanceType{domain.MaintenancePreventive, domain.MaintenanceCorrective, domain.MaintenancePredictive} {
		v.MaintenanceTypes = append(v.MaintenanceTypes, Option{Value: string(t), Label: MaintenanceTypeLabel(t), Selected: string(t) == v.Values["type"]})
	}
	return v
}

func categoryOptions(selected string) []Option {
	opts := make([]Option, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		opts = append(opts, Option{Value: string(c), Label: CategoryLabel(c), Selected: string(c) == selected})
	}
	return opts
}

func toastViews(toasts []notify.Toast) []ToastView {
	out := make([]ToastView, len(toasts))
	for i, t := range toasts {
		out[i] = ToastView{ID: t.ID, Message: t.Message, Kind: string(t.Kind), Leaving: t.Leaving}
	}
	return out
}
