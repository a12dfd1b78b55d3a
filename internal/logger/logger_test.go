package logger

import "testing"

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		log, err := New(level)
		if err != nil {
			t.Fatalf("level %s: %v", level, err)
		}
		if level == "debug" && !log.Core().Enabled(-1) {
			t.Error("debug logger must enable debug entries")
		}
		if level == "bogus" && log.Core().Enabled(-1) {
			t.Error("unknown level must fall back to info")
		}
	}
}
