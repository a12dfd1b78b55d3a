package domain

type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventive"
	MaintenanceCorrective MaintenanceType = "corrective"
	MaintenancePredictive MaintenanceType = "predictive"
)

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
)

type MaintenanceTask struct {
	ID          string            `db:"id" json:"id"`
	Equipment   string            `db:"equipment" json:"equipment"`
	Date        string            `db:"date" json:"date"`
	Type        MaintenanceType   `db:"type" json:"type"`
	Description string            `db:"description" json:"description"`
	Status      MaintenanceStatus `db:"status" json:"status"`
}
