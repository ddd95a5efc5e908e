package recorder

// RunRecord captures the outcome of one scheduled report run. Only the
// delivery log is persisted; rendered reports are not stored.
type RunRecord struct {
	Symbols   []string // symbols that yielded usable price data
	Included  int      // records that passed the threshold policy
	Sent      bool
	Recipient string
	Note      string // error detail when the run failed
}

// Recorder persists the delivery log.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
