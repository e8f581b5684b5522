package recorder

// SimulationRecord is the minimal record needed to replay a simulation.
type SimulationRecord struct {
	Product     string
	Subcategory string
	Location    string
	AdType      string
	AdApproach  string
	ROI         float64
	Revenue     float64
	Cost        float64
	Analysis    []string
	Suggestions []string
}

// Recorder durably appends successful simulation runs. The
// orchestration layer only hands records off; failures are logged by
// the caller, never surfaced to clients.
type Recorder interface {
	RecordSimulation(rec *SimulationRecord) error
	CountSimulations() (int64, error)
	Close() error
}
