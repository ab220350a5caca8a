package constants

// Report defaults
const (
	// LookAheadDays is how far into the future deadlines are shown
	LookAheadDays = 7

	// DefaultMaxTextLen is the item length after which text is cut
	DefaultMaxTextLen = 30
)
