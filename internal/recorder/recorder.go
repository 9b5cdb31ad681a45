package recorder

// Recorder persists a diagnostic trail of feed ticks and rendered frames.
// It is append-only: nothing is ever read back into the running program, so
// chart state still does not survive a restart.
type Recorder interface {
	RecordTick(price float64, shortLen, longLen int) error
	RecordRender(view string, points int, min, max float64) error
	Close() error
}
