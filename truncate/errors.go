package truncate

import "errors"

var (
	// ErrIneffective indicates the policy cannot bound a power-series expansion
	// (inactive policy, non-positive minimum degree, negative limit, norm >= 1).
	ErrIneffective = errors.New("truncate: policy cannot bound the expansion")

	// ErrBadStep indicates a non-positive power-series step or a negative start.
	ErrBadStep = errors.New("truncate: invalid power-series start/step")
)
