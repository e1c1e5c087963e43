package directory

import "strconv"

// AgentRef is an agent reference classified once at the boundary: either a
// numeric agent ID or a name to be resolved against the roster.
type AgentRef struct {
	raw     string
	id      int64
	numeric bool
}

// ParseAgentRef classifies an identifier string. A string consisting only
// of digits is a numeric ID; anything else is treated as a name.
func ParseAgentRef(identifier string) AgentRef {
	if isDigits(identifier) {
		id, err := strconv.ParseInt(identifier, 10, 64)
		if err == nil {
			return AgentRef{raw: identifier, id: id, numeric: true}
		}
	}
	return AgentRef{raw: identifier}
}

// Numeric reports whether the reference is a numeric agent ID.
func (r AgentRef) Numeric() bool {
	return r.numeric
}

// ID returns the numeric agent ID; zero for name references.
func (r AgentRef) ID() int64 {
	return r.id
}

// Name returns the original identifier string.
func (r AgentRef) Name() string {
	return r.raw
}

func (r AgentRef) String() string {
	return r.raw
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
