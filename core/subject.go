package core

// Subject names what a neighbor query centers on: either an agent (which is
// excluded from its own result) or a bare position. The two cases are an
// explicit tagged pair so topologies branch on construction, not on runtime
// type inspection. The zero Subject is invalid and makes Neighbors fail with
// ErrInvalidSubjectType.
type Subject struct {
	agent Agent
	pos   Position
}

// AgentSubject centers a neighbor query on an agent's current location.
func AgentSubject(a Agent) Subject {
	return Subject{agent: a}
}

// PositionSubject centers a neighbor query on a bare position.
func PositionSubject(p Position) Subject {
	return Subject{pos: p}
}

// Agent returns the subject agent, if any.
func (s Subject) Agent() (Agent, bool) {
	return s.agent, s.agent != nil
}

// Position resolves the query center: the agent's current location for agent
// subjects, the wrapped position otherwise.
func (s Subject) Position() Position {
	if s.agent != nil {
		return s.agent.Location()
	}
	return s.pos
}

// IsZero reports whether the subject carries neither an agent nor a position.
func (s Subject) IsZero() bool {
	return s.agent == nil && s.pos.IsEmpty()
}
