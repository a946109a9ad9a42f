package core

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestPosition_Constructors(t *testing.T) {
	p := ScalarPosition(7)
	if p.Kind() != PositionScalar || p.Scalar() != 7 {
		t.Fatalf("scalar position mismatch: %v", p)
	}

	k := KeyPosition("room:3")
	if k.Kind() != PositionKey || k.Key() != "room:3" {
		t.Fatalf("key position mismatch: %v", k)
	}

	v := VectorPosition(1.5, -2)
	if v.Kind() != PositionVector {
		t.Fatalf("vector position mismatch: %v", v)
	}
	if got := v.Vec(); got.X != 1.5 || got.Y != -2 {
		t.Fatalf("vector payload mismatch: %+v", got)
	}

	var zero Position
	if !zero.IsEmpty() || zero.Kind() != PositionEmpty {
		t.Fatalf("zero position should be empty, got %v", zero)
	}
}

func TestPositionOf(t *testing.T) {
	cases := []struct {
		name    string
		payload any
		kind    PositionKind
	}{
		{"int", 5, PositionScalar},
		{"int64", int64(9), PositionScalar},
		{"string", "k", PositionKey},
		{"vec", r2.Vec{X: 1, Y: 2}, PositionVector},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := PositionOf(tc.payload)
			if err != nil {
				t.Fatalf("PositionOf(%v): %v", tc.payload, err)
			}
			if p.Kind() != tc.kind {
				t.Fatalf("kind = %v, want %v", p.Kind(), tc.kind)
			}
		})
	}

	for _, payload := range []any{3.14, nil, []int{1}, true} {
		if _, err := PositionOf(payload); !errors.Is(err, ErrInvalidPositionType) {
			t.Fatalf("PositionOf(%v) error = %v, want ErrInvalidPositionType", payload, err)
		}
	}
}

func TestPosition_Equal(t *testing.T) {
	if !ScalarPosition(3).Equal(ScalarPosition(3)) {
		t.Error("equal scalars should compare equal")
	}
	if ScalarPosition(3).Equal(ScalarPosition(4)) {
		t.Error("distinct scalars should not compare equal")
	}
	if ScalarPosition(1).Equal(VectorPosition(1, 0)) {
		t.Error("distinct kinds should not compare equal")
	}
	if !VectorPosition(2, 3).Equal(VectorPosition(2, 3)) {
		t.Error("equal vectors should compare equal")
	}
}
