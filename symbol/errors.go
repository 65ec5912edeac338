package symbol

import "errors"

// Sentinel errors for symbol registration and argument layout.
var (
	// ErrEmptyName indicates a symbol with an empty name.
	ErrEmptyName = errors.New("symbol: name is empty")

	// ErrSymbolConflict indicates a name already registered with different evaluation data.
	ErrSymbolConflict = errors.New("symbol: name registered with different data")

	// ErrNotFound indicates a lookup of an unregistered name.
	ErrNotFound = errors.New("symbol: not found")

	// ErrDuplicateArgument indicates a symbol appearing twice in one argument slot.
	ErrDuplicateArgument = errors.New("symbol: duplicate argument")

	// ErrBadEchelon indicates an echelon index outside the known slots.
	ErrBadEchelon = errors.New("symbol: unknown echelon")
)
