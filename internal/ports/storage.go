package ports

// Storage is the key-value persistence the store writes through. Values
// are opaque serialized blobs; the store overwrites them wholesale after
// every mutation.
type Storage interface {
	// Get returns the value for key and whether the key was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	Close() error
}
