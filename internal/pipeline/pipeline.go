// Package pipeline describes the stages a single source file passes
// through in a batch "check" run: read off disk, scanned into raw tokens,
// grouped into nester.BlockLines, and run through the diagnostic engine.
// internal/driver emits Events as a file moves between stages; internal/ui
// renders them.
package pipeline

// Stage identifies where a file currently sits in the batch run.
type Stage int

const (
	StageRead Stage = iota
	StageScan
	StageNest
	StageReport
	StageDone
)

// Status is the outcome of a file's current stage.
type Status int

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports one file's progress. File is empty for a run-wide event
// (e.g. a stage-level label update with no single file attached).
type Event struct {
	File   string
	Stage  Stage
	Status Status
}
