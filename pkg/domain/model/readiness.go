package model

// Overall readiness statuses
const (
	ReadinessStatusOK          = "ok"
	ReadinessStatusUnavailable = "unavailable"
)

// ProbeResult is the outcome of a single connectivity probe
type ProbeResult struct {
	Name   string `json:"name"`
	Target string `json:"target"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// ReadinessReport aggregates probe results
type ReadinessReport struct {
	Status string        `json:"status"`
	Checks []ProbeResult `json:"checks"`
}

// NewReadinessReport derives the overall status from the checks
func NewReadinessReport(checks []ProbeResult) *ReadinessReport {
	report := &ReadinessReport{
		Status: ReadinessStatusOK,
		Checks: checks,
	}
	for _, c := range checks {
		if !c.OK {
			report.Status = ReadinessStatusUnavailable
			break
		}
	}
	return report
}

// Ready reports whether every probe passed
func (r *ReadinessReport) Ready() bool {
	return r.Status == ReadinessStatusOK
}
