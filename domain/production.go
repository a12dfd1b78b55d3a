package domain

type Line string

const (
	LineA Line = "A"
	LineB Line = "B"
	LineC Line = "C"
)

var Lines = []Line{LineA, LineB, LineC}

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ProductionOrder progress is a percentage in [0,100]. Quantity and Priority
// are zero for orders that were seeded without them.
type ProductionOrder struct {
	ID         string   `db:"id" json:"id"`
	Product    string   `db:"product" json:"product"`
	Line       Line     `db:"line" json:"line"`
	Progress   int      `db:"progress" json:"progress"`
	Efficiency float64  `db:"efficiency" json:"efficiency"`
	Quantity   int64    `db:"quantity" json:"quantity,omitempty"`
	Priority   Priority `db:"priority" json:"priority,omitempty"`
}

func (o ProductionOrder) Active() bool {
	return o.Progress > 0 && o.Progress < 100
}

func (o ProductionOrder) Finished() bool {
	return o.Progress >= 100
}
