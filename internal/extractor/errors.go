package extractor

import "fmt"

// Stage names the pipeline step in which an extraction failed.
type Stage string

const (
	StageLaunch     Stage = "launch"
	StageNavigation Stage = "navigation"
	StageSettle     Stage = "settle"
	StageEvaluation Stage = "evaluation"
)

// ExtractionError is the single error reported for a failed extraction.
type ExtractionError struct {
	Stage Stage
	URL   string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction of '%s' failed during %s: %v", e.URL, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func newExtractionError(stage Stage, url string, err error) *ExtractionError {
	return &ExtractionError{Stage: stage, URL: url, Err: err}
}
