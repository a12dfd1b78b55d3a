package dashboard

import (
	"fmt"
	"time"
)

var (
	weekdayNames = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	monthNames   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
		"agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// FormatClock renders t the way the header clock shows it, e.g.
// "lunes, 15 de enero de 2024, 09:05".
func FormatClock(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d, %02d:%02d",
		weekdayNames[t.Weekday()], t.Day(), monthNames[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
