package models

// CourseSummary describes the distribution of ranks one course received.
// Statistics that are undefined for the sample are nil.
type CourseSummary struct {
	// Position is the 1-based place in the sorted report.
	Position int `json:"position"`
	// Course is the course label.
	Course string `json:"course"`
	// ColumnName is the spreadsheet column letter (e.g. "L").
	ColumnName string `json:"column"`
	// Responses is the number of numeric ranks.
	Responses int `json:"responses"`
	// Missing is the number of blank or non-numeric cells.
	Missing int `json:"missing"`
	// Mean is the average rank.
	Mean *float64 `json:"mean"`
	// Median is the median rank.
	Median *float64 `json:"median"`
	// StdDev is the sample standard deviation (needs at least two ranks).
	StdDev *float64 `json:"std_dev"`
	// Min is the best rank given.
	Min *float64 `json:"min"`
	// Max is the worst rank given.
	Max *float64 `json:"max"`
}

// Summary is the serializable companion of Report.
type Summary struct {
	Source      string          `json:"source"`
	Sheet       string          `json:"sheet,omitempty"`
	Respondents int             `json:"respondents"`
	Courses     []CourseSummary `json:"courses"`
}
