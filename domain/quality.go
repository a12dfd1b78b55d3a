package domain

type InspectionStatus string

const (
	InspectionApproved InspectionStatus = "approved"
	InspectionRejected InspectionStatus = "rejected"
	InspectionPending  InspectionStatus = "pending"
)

type QualityInspection struct {
	ID      string           `db:"id" json:"id"`
	Product string           `db:"product" json:"product"`
	Status  InspectionStatus `db:"status" json:"status"`
	Date    string           `db:"date" json:"date"`
}
