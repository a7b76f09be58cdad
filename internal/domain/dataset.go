package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dataset source values.
const (
	SourceUpload  = "upload"
	SourceBundled = "bundled"
)

// Dataset is the session-scoped owner of one batch of scored records.
// Records are immutable after analysis; loading a new dataset creates a
// new Dataset rather than mutating an existing one.
type Dataset struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Source    string           `json:"source"`
	Records   []FeedbackRecord `json:"records"`
	Skipped   int              `json:"skipped"`
	CreatedAt time.Time        `json:"created_at"`
}

// Size returns the number of valid records in the dataset.
func (d *Dataset) Size() int {
	return len(d.Records)
}
