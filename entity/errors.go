package entity

import "fmt"

// LineError reports an input line that could not be turned into a PriceRecord.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

func (e *LineError) Unwrap() error { return e.Err }

// ResolutionError is returned when the commodity or currency is not in the
// ledger, or the ledger cannot be reached at all.
type ResolutionError struct {
	Kind string // "commodity", "currency" or "connection"
	Name string
	Err  error
}

func (e *ResolutionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("resolve %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("resolve %s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// StoreError is returned when the batch write fails and has been rolled back.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
