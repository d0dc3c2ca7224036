package domain

// RecordState is the three-way classification of a soft-delete ledger row,
// checked before side-effecting creates against external systems.
type RecordState int

const (
	// no row matches the natural key.
	RecordNotFound RecordState = iota

	// a row matches but its validity flag is false; a prior delete occurred.
	RecordDeleted

	// a row matches and is valid.
	RecordActive
)

func (s RecordState) String() string {
	switch s {
	case RecordNotFound:
		return "not-found"
	case RecordDeleted:
		return "deleted"
	case RecordActive:
		return "active"
	default:
		return "unknown"
	}
}

// StateOfRecord derives the RecordState from a (found, valid) projection
// of the ledger row.
func StateOfRecord(found bool, valid bool) RecordState {
	if !found {
		return RecordNotFound
	}
	if valid {
		return RecordActive
	}
	return RecordDeleted
}

// NoRecord reports whether a fresh ledger row has to be inserted
// (rather than an invalidated one being revalidated).
//
// It also gates whether a source-control directory needs to be initialized.
func (s RecordState) NoRecord() bool {
	return s == RecordNotFound
}
