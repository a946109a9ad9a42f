package core

import "fmt"

// Sentinel errors reported by the core lifecycle operations. All failures are
// synchronous and fatal to the operation that raised them; nothing is retried
// internally. Callers match with errors.Is.
var (
	// ErrIdentitySpaceExhausted is returned by Identity.Next once the id
	// counter reaches the maximum representable integer.
	ErrIdentitySpaceExhausted = fmt.Errorf("agent identity space exhausted")

	// ErrInvalidPositionType is returned when a position is constructed from,
	// or a topology is handed, a payload kind it does not support.
	ErrInvalidPositionType = fmt.Errorf("invalid position type")

	// ErrSpaceNotBound is returned by the space operations when the space has
	// no owning world.
	ErrSpaceNotBound = fmt.Errorf("space not bound to a world")

	// ErrUnknownAgent is returned by RemoveAgent and KillAgent when the
	// agent's id is absent from the world registry.
	ErrUnknownAgent = fmt.Errorf("unknown agent")

	// ErrInvalidSubjectType is returned by Neighbors when the subject is
	// neither an agent nor a position of the topology's kind.
	ErrInvalidSubjectType = fmt.Errorf("invalid subject type")

	// ErrNilSpace is returned by NewWorld for a nil space.
	ErrNilSpace = fmt.Errorf("nil space")

	// ErrSpaceBound is returned by NewWorld when the space already belongs to
	// another world.
	ErrSpaceBound = fmt.Errorf("space already bound to a world")
)
