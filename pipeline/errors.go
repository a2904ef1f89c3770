package pipeline

import "errors"

var (
	// ErrGeneratorRequired is returned when a pair generator is not provided.
	ErrGeneratorRequired = errors.New("pair generator required")

	// ErrSinkRequired is returned when a sink is not provided.
	ErrSinkRequired = errors.New("sink required")
)
