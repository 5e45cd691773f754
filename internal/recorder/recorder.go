package recorder

import "github.com/maheswardileep829-blip/stock-analyzer/internal/model"

// Recorder persists run history for later comparison. Recording failures are
// never fatal to a run; the CSV stays the canonical output.
type Recorder interface {
	RecordRun(rs *model.ResultSet) (runID string, err error)
	Close() error
}
