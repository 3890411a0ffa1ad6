package portal

import "fmt"

// LoadError indicates the config file exists but could not be read or parsed.
type LoadError struct {
	// Path is the config file that failed to load.
	Path string
	// Reason is the underlying error.
	Reason error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Error loading config %s: %v", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Reason
}

// StoreError indicates the config could not be serialized or written.
type StoreError struct {
	// Path is the config file that failed to be written.
	Path string
	// Reason is the underlying error.
	Reason error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("Failed to save config %s: %v", e.Path, e.Reason)
}

func (e *StoreError) Unwrap() error {
	return e.Reason
}

// TagNotFoundError indicates a lookup for a tag that has no portal.
type TagNotFoundError struct {
	Tag string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("Did not find prtl with tag %s", e.Tag)
}
