package domain

import "time"

// BranchListKey is the sentinel natural key under which the full branch list
// response is staged as a single row.
const BranchListKey = "FULL_BRANCH_LIST"

// StagedEntity is one row of the durable holding area: the last fetched payload
// for an upstream entity plus whether it has been mapped yet. Rows are only
// removed by an explicit reset, never by the sync pass.
type StagedEntity struct {
	NaturalKey  string    `db:"natural_key"`
	BranchKey   string    `db:"branch_key"`
	Payload     []byte    `db:"payload"`
	Fingerprint string    `db:"fingerprint"`
	LastSynced  time.Time `db:"last_synced"`
	Processed   bool      `db:"processed"`
}

// Change classifies an upstream record against its stored fingerprint.
type Change int

const (
	ChangeNew Change = iota
	ChangeChanged
	ChangeUnchanged
)

func (c Change) String() string {
	switch c {
	case ChangeNew:
		return "new"
	case ChangeChanged:
		return "changed"
	default:
		return "unchanged"
	}
}
