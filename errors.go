package noise

import "fmt"

// UnboundSourceError reports an evaluation attempted while a required source
// slot was still unbound. Module names the module type ("add", "line", ...),
// Slot is the lowest unbound slot index.
type UnboundSourceError struct {
	Module string
	Slot   int
}

func (e *UnboundSourceError) Error() string {
	return fmt.Sprintf("noise: %s: source slot %d is unbound", e.Module, e.Slot)
}

// IndexOutOfRangeError reports a slot index outside [0, Count).
type IndexOutOfRangeError struct {
	Module string
	Index  int
	Count  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("noise: %s: source index %d out of range [0,%d)", e.Module, e.Index, e.Count)
}

// GraphTooDeepError reports a validation walk that exceeded its depth
// ceiling. A graph this deep almost always contains a cycle introduced
// during assembly.
type GraphTooDeepError struct {
	MaxDepth int
}

func (e *GraphTooDeepError) Error() string {
	return fmt.Sprintf("noise: graph exceeds maximum depth %d (cycle?)", e.MaxDepth)
}
