package rowan

import "log"

// globalDebug enables stderr warnings for recoverable oddities: lookup
// misses that smell like typos, rejected mapping inserts, sheet indices past
// the end. Off by default.
var globalDebug bool

// SetDebug toggles debug warnings for the whole package.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// Debug reports whether debug warnings are enabled.
func Debug() bool {
	return globalDebug
}

func debugf(format string, args ...any) {
	if globalDebug {
		log.Printf("rowan: "+format, args...)
	}
}
