package store

// SessionStore is the key-value storage port behind every persisted entity
// of the session core. It follows the browser storage model: string keys,
// string values, no transactions.
//
// Implementations must treat their own unavailability as emptiness on the
// read path; writes may fail and callers are expected to degrade rather
// than crash.
type SessionStore interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (string, bool)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes the value stored under key. Removing an absent key
	// is a no-op.
	Remove(key string)

	// Clear deletes every key in the store.
	Clear()
}
