package domain

type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "pending"
	ShipmentInTransit ShipmentStatus = "in-transit"
	ShipmentDelivered ShipmentStatus = "delivered"
)

type Shipment struct {
	ID          string         `db:"id" json:"id"`
	Destination string         `db:"destination" json:"destination"`
	Status      ShipmentStatus `db:"status" json:"status"`
	Date        string         `db:"date" json:"date"`
	Notes       string         `db:"notes" json:"notes,omitempty"`
}
