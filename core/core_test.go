package core

import "testing"

// stubSpace is the minimal topology used across the core tests: BaseSpace
// plumbing, a canned random position and an everyone-is-a-neighbor query.
type stubSpace struct {
	BaseSpace
	random Position
}

func (s *stubSpace) RandomPosition() Position { return s.random }

func (s *stubSpace) Neighbors(subject Subject, radius ...float64) ([]Agent, error) {
	w := s.World()
	if w == nil {
		return nil, ErrSpaceNotBound
	}
	sub, isAgent := subject.Agent()
	var out []Agent
	for _, a := range w.Agents() {
		if !a.Live() {
			continue
		}
		if isAgent && a.ID() == sub.ID() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// rejectingSpace refuses every placement, like a topology handed a foreign
// position kind.
type rejectingSpace struct {
	stubSpace
}

func (s *rejectingSpace) Place(Agent, Position) (Position, error) {
	return Position{}, ErrInvalidPositionType
}

// Interface compliance (compile-time assertions)
var (
	_ Space = (*stubSpace)(nil)
	_ Space = (*rejectingSpace)(nil)
	_ Agent = (*BaseAgent)(nil)
)

func newTestWorld(t *testing.T) (*World, *stubSpace) {
	t.Helper()
	s := &stubSpace{}
	w, err := NewWorld(s)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w, s
}

func newTestAgent(t *testing.T, seq *Identity) *BaseAgent {
	t.Helper()
	a, err := NewBaseAgent(seq)
	if err != nil {
		t.Fatalf("NewBaseAgent: %v", err)
	}
	return &a
}
