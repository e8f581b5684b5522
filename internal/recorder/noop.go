package recorder

// NoopRecorder is a no-op implementation used when SQLite is not available.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSimulation(_ *SimulationRecord) error { return nil }
func (n *NoopRecorder) CountSimulations() (int64, error)           { return 0, nil }
func (n *NoopRecorder) Close() error                               { return nil }
