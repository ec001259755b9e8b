package models

// OperationResult is the outcome of one operation against one camera.
// Results are created fresh every run and never persisted.
type OperationResult struct {
	Host    string `json:"host"`
	Success bool   `json:"success"`
	Skipped bool   `json:"skipped"`
	Message string `json:"message"`
}

// RunSummary aggregates per-camera outcomes for one run.
type RunSummary struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Add folds one result into the summary.
func (s *RunSummary) Add(r OperationResult) {
	switch {
	case r.Skipped:
		s.Skipped++
	case r.Success:
		s.Succeeded++
	default:
		s.Failed++
	}
}

// Total is the number of cameras that received a result.
func (s RunSummary) Total() int {
	return s.Succeeded + s.Failed + s.Skipped
}
