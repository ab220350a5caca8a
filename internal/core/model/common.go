package model

// Deadline file conventions
const (
	DeadlinesFileName = "0-deadlines.md"
	DoneMarker        = "DONE"
	DateLayout        = "2006-01-02"
)

// Widget colors
const (
	ColorOverdue = "red"
	ColorItem    = "lightgrey"
)

// Output formats
const (
	OutputConky = "conky"
	OutputPlain = "plain"
	OutputJSON  = "json"
	OutputCSV   = "csv"
)

// UndatedLabel is shown for items that appear before any date heading.
const UndatedLabel = "Undated"
