package sched

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind is a loop scheduling strategy.
type Kind int

const (
	Static Kind = iota
	Dynamic
	Guided
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Guided:
		return "guided"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Policy selects how iterations are handed to workers.
type Policy struct {
	Kind Kind
	// Chunk is the grab size for Dynamic (default 1), the minimum grab for
	// Guided (default 1) and the round-robin chunk for Static (0 = one block
	// per worker).
	Chunk int
}

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("unknown schedule policy")

// StaticPolicy splits the index space into one block per worker.
func StaticPolicy() Policy { return Policy{Kind: Static} }

// DynamicPolicy hands out chunk iterations at a time from a shared cursor.
func DynamicPolicy(chunk int) Policy { return Policy{Kind: Dynamic, Chunk: chunk} }

// GuidedPolicy hands out shrinking chunks with a minimum of one iteration.
func GuidedPolicy() Policy { return Policy{Kind: Guided} }

// ParsePolicy parses "static", "dynamic", "guided", optionally followed by
// ",<chunk>" (e.g. "dynamic,10").
func ParsePolicy(s string) (Policy, error) {
	name, chunkStr, hasChunk := strings.Cut(strings.TrimSpace(strings.ToLower(s)), ",")
	var p Policy
	switch name {
	case "", "static":
		p.Kind = Static
	case "dynamic":
		p.Kind = Dynamic
	case "guided":
		p.Kind = Guided
	default:
		return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
	if hasChunk {
		chunk, err := strconv.Atoi(strings.TrimSpace(chunkStr))
		if err != nil || chunk < 0 {
			return Policy{}, fmt.Errorf("%w: bad chunk in %q", ErrUnknownPolicy, s)
		}
		p.Chunk = chunk
	}
	return p, nil
}

func (p Policy) String() string {
	if p.Chunk > 0 {
		return fmt.Sprintf("%s,%d", p.Kind, p.Chunk)
	}
	return p.Kind.String()
}

// MarshalText implements encoding.TextMarshaler so policies can sit in config files.
func (p Policy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(b []byte) error {
	v, err := ParsePolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
