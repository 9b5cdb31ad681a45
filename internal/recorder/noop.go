package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTick(_ float64, _, _ int) error             { return nil }
func (n *NoopRecorder) RecordRender(_ string, _ int, _, _ float64) error { return nil }
func (n *NoopRecorder) Close() error                                     { return nil }
