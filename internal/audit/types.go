package audit

import "time"

// Issue records one legacy token found on one line.
type Issue struct {
	FilePath    string
	LineNumber  int
	Token       string
	Content     string
	Replacement string
}

// FileReport groups the issues found in a single file, in line order.
type FileReport struct {
	FilePath string
	Issues   []Issue
}

// Report aggregates the outcome of one audit run. Files appear in scan order and only
// when they carry at least one issue.
type Report struct {
	Files        []FileReport
	TotalIssues  int
	FilesScanned int
	FilesSkipped int
	Elapsed      time.Duration
}

// Clean reports whether the run found no issues.
func (report Report) Clean() bool {
	return report.TotalIssues == 0
}

func (report *Report) addFile(fileReport FileReport) {
	if len(fileReport.Issues) == 0 {
		return
	}
	report.Files = append(report.Files, fileReport)
	report.TotalIssues += len(fileReport.Issues)
}

// CommandOptions captures the resolved parameters of an audit run.
type CommandOptions struct {
	Roots               []string
	ExcludedDirectories []string
	Extensions          []string
}

// Clock abstracts time-dependent functionality for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard library.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
