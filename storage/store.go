// Package storage provides the key-value persistence used by the log and
// profile services. Values are JSON-serialized; keys are plain strings.
package storage

const (
	// ProfileKey holds the serialized UserProfile. Absence means the user
	// has not completed onboarding yet.
	ProfileKey = "profile"

	// LogKeyPrefix prefixes per-date daily log keys ("log_2025-03-14").
	LogKeyPrefix = "log_"
)

// LogKey returns the storage key for a daily log by its YYYY-MM-DD date.
func LogKey(date string) string {
	return LogKeyPrefix + date
}

// Store is the persistence contract. Get reports (false, nil) for a missing
// key: absence is a normal state, not an error. Reset clears every key.
type Store interface {
	Get(key string, out any) (bool, error)
	Put(key string, val any) error
	Delete(key string) error
	Reset() error
	Close() error
}
