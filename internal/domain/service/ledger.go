package service

// ProcessedLedger tracks which inbound status identifiers have already been
// acted upon, suppressing duplicate side effects under the platform's
// at-least-once delivery. Location upserts are idempotent by construction and
// do not consult the ledger.
type ProcessedLedger interface {
	// Seen reports whether id was already recorded.
	Seen(id string) bool

	// MarkSeen records id as processed.
	MarkSeen(id string)

	// Observe atomically records id and reports whether this was its first
	// sighting. Two concurrent deliveries of the same id see exactly one
	// true result.
	Observe(id string) bool
}
