package domain

import (
	"fmt"
	"time"
)

const (
	TagInventory   = "INV"
	TagShipment    = "ENT"
	TagOrder       = "ORD"
	TagInspection  = "INS"
	TagMaintenance = "MNT"
)

// NewID builds a time based identifier. Two calls within the same
// millisecond return the same value.
func NewID(tag string, now time.Time) string {
	return fmt.Sprintf("%s-%d", tag, now.UnixMilli())
}
