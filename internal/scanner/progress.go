package scanner

// EventKind discriminates progress events.
type EventKind int

const (
	// EventFileStarted is emitted immediately before a candidate's scan.
	EventFileStarted EventKind = iota
	// EventFileCompleted is emitted immediately after, carrying the outcome.
	EventFileCompleted
)

// Event is one progress notification. SizeBytes is set on successful
// completions; Err is set on failed ones.
type Event struct {
	Kind      EventKind
	Path      string
	SizeBytes uint64
	Err       error
}

// A ProgressSink receives per-file progress notifications during a scan.
// For any one file, FileStarted is always delivered before FileCompleted.
// Workers call the sink concurrently, so implementations must be safe for
// concurrent use.
type ProgressSink interface {
	FileStarted(path string)
	FileCompleted(path string, sizeBytes uint64, err error)
}

// NopSink discards all progress events.
type NopSink struct{}

func (NopSink) FileStarted(string)                  {}
func (NopSink) FileCompleted(string, uint64, error) {}

// ChannelSink forwards progress events to a channel, for callers that want
// to consume progress as a stream rather than via callbacks. Sends block
// when the channel is full, which throttles the scan rather than dropping
// events.
type ChannelSink struct {
	ch chan<- Event
}

// NewChannelSink returns a sink that forwards events to ch. The caller owns
// the channel and closes it after ScanPath returns.
func NewChannelSink(ch chan<- Event) *ChannelSink {
	return &ChannelSink{ch: ch}
}

func (s *ChannelSink) FileStarted(path string) {
	s.ch <- Event{Kind: EventFileStarted, Path: path}
}

func (s *ChannelSink) FileCompleted(path string, sizeBytes uint64, err error) {
	s.ch <- Event{Kind: EventFileCompleted, Path: path, SizeBytes: sizeBytes, Err: err}
}
