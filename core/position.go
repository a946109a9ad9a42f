package core

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// PositionKind tags the payload wrapped by a Position.
type PositionKind uint8

const (
	// PositionEmpty is the kind of the zero Position ("nowhere").
	PositionEmpty PositionKind = iota

	// PositionScalar wraps an int64, used as a graph node key.
	PositionScalar

	// PositionKey wraps a string composite key. Reserved extension point; no
	// bundled topology uses it.
	PositionKey

	// PositionVector wraps a 2D vector, used by the grid topology.
	PositionVector
)

// String returns the kind name.
func (k PositionKind) String() string {
	switch k {
	case PositionEmpty:
		return "empty"
	case PositionScalar:
		return "scalar"
	case PositionKey:
		return "key"
	case PositionVector:
		return "vector"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Position is an immutable tagged location value. It wraps exactly one of the
// recognized payload kinds; the zero value is the empty position, which is a
// valid "nowhere" rather than an error state. Position is comparable and
// compares by kind and payload.
type Position struct {
	kind   PositionKind
	scalar int64
	key    string
	vec    r2.Vec
}

// ScalarPosition wraps a graph node key.
func ScalarPosition(id int64) Position {
	return Position{kind: PositionScalar, scalar: id}
}

// KeyPosition wraps a composite string key.
func KeyPosition(key string) Position {
	return Position{kind: PositionKey, key: key}
}

// VectorPosition wraps a 2D vector built from its components.
func VectorPosition(x, y float64) Position {
	return Position{kind: PositionVector, vec: r2.Vec{X: x, Y: y}}
}

// PositionOf validates a dynamic payload and wraps it. It accepts an int or
// int64 (scalar), a string (key) or an r2.Vec (vector); anything else fails
// with ErrInvalidPositionType. Static call sites should prefer the typed
// constructors; PositionOf exists for boundaries where payloads arrive
// untyped, such as the scenario loader.
func PositionOf(payload any) (Position, error) {
	switch v := payload.(type) {
	case int:
		return ScalarPosition(int64(v)), nil
	case int64:
		return ScalarPosition(v), nil
	case string:
		return KeyPosition(v), nil
	case r2.Vec:
		return Position{kind: PositionVector, vec: v}, nil
	default:
		return Position{}, fmt.Errorf("%w: %T", ErrInvalidPositionType, payload)
	}
}

// Kind returns the payload kind.
func (p Position) Kind() PositionKind { return p.kind }

// IsEmpty reports whether p is the empty position.
func (p Position) IsEmpty() bool { return p.kind == PositionEmpty }

// Scalar returns the wrapped node key. Meaningful only for PositionScalar.
func (p Position) Scalar() int64 { return p.scalar }

// Key returns the wrapped composite key. Meaningful only for PositionKey.
func (p Position) Key() string { return p.key }

// Vec returns the wrapped 2D vector. Meaningful only for PositionVector.
func (p Position) Vec() r2.Vec { return p.vec }

// Equal reports whether p and q wrap the same kind and payload.
func (p Position) Equal(q Position) bool { return p == q }

// String renders the position for logs and test failures.
func (p Position) String() string {
	switch p.kind {
	case PositionScalar:
		return fmt.Sprintf("scalar(%d)", p.scalar)
	case PositionKey:
		return fmt.Sprintf("key(%s)", p.key)
	case PositionVector:
		return fmt.Sprintf("vec(%g, %g)", p.vec.X, p.vec.Y)
	default:
		return "empty"
	}
}
