package noise

// Module is a unit of the evaluation graph: a scalar field over 3D space
// with a fixed number of source slots feeding it.
//
// Modules hold non-owning references to their sources. Every slot in
// [0, SourceCount()) must be bound before GetValue is called; evaluating
// with an unbound slot returns an *UnboundSourceError instead of a value.
//
// Implementations must keep GetValue pure: deterministic for a given graph
// and coordinate, no side effects, no mutation of bindings. That purity is
// what makes concurrent evaluation of a frozen graph safe.
//
// Any external type satisfying Module is usable anywhere a source reference
// is expected, as long as it honors the same slot-binding contract.
type Module interface {
	// SourceCount returns the fixed number of source slots this module
	// requires. It is constant for the lifetime of the module.
	SourceCount() int

	// SetSource binds slot index to source. The module does not take
	// ownership; the caller must keep source alive for as long as the
	// binding exists. Passing nil unbinds the slot. Returns an
	// *IndexOutOfRangeError if index is outside [0, SourceCount()).
	SetSource(index int, source Module) error

	// Source returns the module bound to slot index, or nil if the slot
	// is unbound. Returns an *IndexOutOfRangeError if index is outside
	// [0, SourceCount()). Pure read.
	Source(index int) (Module, error)

	// GetValue evaluates the field at (x, y, z). Returns an
	// *UnboundSourceError if a required slot is unbound. NaN and infinite
	// results are not errors; they propagate per IEEE-754.
	GetValue(x, y, z float64) (float64, error)
}

// sourceSlots is the fixed-arity slot container embedded by every concrete
// module. An unbound slot is a nil entry, so the hot-path bound check is a
// single nil comparison.
type sourceSlots struct {
	name    string
	sources []Module
}

func newSourceSlots(name string, count int) sourceSlots {
	return sourceSlots{name: name, sources: make([]Module, count)}
}

// SourceCount returns the fixed number of source slots.
func (s *sourceSlots) SourceCount() int {
	return len(s.sources)
}

// SetSource binds slot index to source; nil unbinds the slot.
func (s *sourceSlots) SetSource(index int, source Module) error {
	if index < 0 || index >= len(s.sources) {
		return &IndexOutOfRangeError{Module: s.name, Index: index, Count: len(s.sources)}
	}
	s.sources[index] = source
	return nil
}

// Source returns the module bound to slot index, or nil if unbound.
func (s *sourceSlots) Source(index int) (Module, error) {
	if index < 0 || index >= len(s.sources) {
		return nil, &IndexOutOfRangeError{Module: s.name, Index: index, Count: len(s.sources)}
	}
	return s.sources[index], nil
}

// boundSource returns the module in slot index, failing with an
// *UnboundSourceError when the slot is empty. Evaluation paths use this
// instead of Source so the failure names the module and slot.
func (s *sourceSlots) boundSource(index int) (Module, error) {
	src := s.sources[index]
	if src == nil {
		return nil, &UnboundSourceError{Module: s.name, Slot: index}
	}
	return src, nil
}

// DefaultMaxDepth is the depth ceiling used by Validate. Legitimate module
// graphs are shallow; a walk this deep indicates a cycle.
const DefaultMaxDepth = 256

// Validate walks the graph rooted at root and reports the first wiring
// defect it finds: an *UnboundSourceError for an empty slot anywhere in the
// graph, or a *GraphTooDeepError when the walk exceeds DefaultMaxDepth.
//
// Evaluation itself carries no depth state, so a cyclic graph handed
// directly to GetValue would recurse until the stack overflows. Run Validate
// after assembly, before a graph is placed on a hot sampling path.
func Validate(root Module) error {
	return ValidateDepth(root, DefaultMaxDepth)
}

// ValidateDepth is Validate with an explicit depth ceiling.
func ValidateDepth(root Module, maxDepth int) error {
	return validate(root, 0, maxDepth)
}

func validate(m Module, depth, maxDepth int) error {
	if depth >= maxDepth {
		return &GraphTooDeepError{MaxDepth: maxDepth}
	}
	for i := 0; i < m.SourceCount(); i++ {
		src, err := m.Source(i)
		if err != nil {
			return err
		}
		if src == nil {
			return &UnboundSourceError{Module: moduleName(m), Slot: i}
		}
		if err := validate(src, depth+1, maxDepth); err != nil {
			return err
		}
	}
	return nil
}

// moduleName recovers the display name of a module for error reporting.
// Modules built on sourceSlots carry their own name; external modules fall
// back to a generic label.
func moduleName(m Module) string {
	if n, ok := m.(interface{ ModuleName() string }); ok {
		return n.ModuleName()
	}
	return "module"
}

// ModuleName returns the short type name used in error messages.
func (s *sourceSlots) ModuleName() string { return s.name }
