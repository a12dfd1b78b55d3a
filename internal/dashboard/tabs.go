package dashboard

// Tab identifies one dashboard panel.
type Tab string

const (
	TabDashboard   Tab = "dashboard"
	TabInventory   Tab = "inventory"
	TabLogistics   Tab = "logistics"
	TabProduction  Tab = "production"
	TabQuality     Tab = "quality"
	TabMaintenance Tab = "maintenance"
)

// Tabs lists the panels in navigation order.
var Tabs = []Tab{TabDashboard, TabInventory, TabLogistics, TabProduction, TabQuality, TabMaintenance}

// ParseTab maps a key from user input to a Tab.
func ParseTab(key string) (Tab, bool) {
	for _, tab := range Tabs {
		if string(tab) == key {
			return tab, true
		}
	}
	return "", false
}

// ModalKind identifies the dialog currently open, if any.
type ModalKind string

const (
	ModalNone           ModalKind = ""
	ModalAddItem        ModalKind = "add-item"
	ModalEditItem       ModalKind = "edit-item"
	ModalDeleteItem     ModalKind = "delete-item"
	ModalAddShipment    ModalKind = "add-shipment"
	ModalAddOrder       ModalKind = "add-order"
	ModalAddMaintenance ModalKind = "add-maintenance"
)

var modalKinds = []ModalKind{ModalAddItem, ModalEditItem, ModalDeleteItem, ModalAddShipment, ModalAddOrder, ModalAddMaintenance}

func ParseModalKind(key string) (ModalKind, bool) {
	for _, kind := range modalKinds {
		if string(kind) == key {
			return kind, true
		}
	}
	return ModalNone, false
}

// needsItem reports whether the dialog is bound to an inventory record.
func (k ModalKind) needsItem() bool {
	return k == ModalEditItem || k == ModalDeleteItem
}
