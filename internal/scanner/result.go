package scanner

// Action classifies a per-file outcome.
type Action string

const (
	ActionWritten Action = "written"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"
)

// Skip reasons recorded on filtered candidates.
const (
	ReasonExcluded    = "excluded by pattern"
	ReasonNotIncluded = "not included by pattern"
	ReasonUnsupported = "unsupported extension"
	ReasonDryRun      = "dry run"
)

// ScannedFile is the outcome for one candidate. Hash and SizeBytes are set
// when the file was actually read: written files and dry-run skips, but not
// filter skips.
type ScannedFile struct {
	Path        string `json:"path"`
	Action      Action `json:"action"`
	SidecarPath string `json:"sidecar_path,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Error       string `json:"error,omitempty"`
	Hash        string `json:"hash,omitempty"`
	SizeBytes   uint64 `json:"size_bytes,omitempty"`
}

// Result aggregates one scan invocation. TotalFiles always equals
// Successful + Failed + Skipped.
type Result struct {
	Files      []ScannedFile `json:"files"`
	TotalFiles int           `json:"total_files"`
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Skipped    int           `json:"skipped"`
}

// newResult tallies counters from the per-file outcomes.
func newResult(files []ScannedFile) *Result {
	r := &Result{Files: files, TotalFiles: len(files)}
	for _, f := range files {
		switch f.Action {
		case ActionWritten:
			r.Successful++
		case ActionFailed:
			r.Failed++
		default:
			r.Skipped++
		}
	}
	return r
}
