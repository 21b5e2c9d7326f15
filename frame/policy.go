package frame

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Policy selects the replacement strategy used for a whole simulation run.
type Policy int

const (
	FIFO Policy = iota
	LRU
	Optimal
	Clock
)

var policyNames = []string{"FIFO", "LRU", "OPTIMAL", "CLOCK"}

func (p Policy) String() string {
	if !p.valid() {
		return "Unknown"
	}
	return policyNames[p]
}

func (p Policy) valid() bool {
	return p >= FIFO && p <= Clock
}

// Policies returns every supported policy in canonical order.
func Policies() []Policy {
	return []Policy{FIFO, LRU, Optimal, Clock}
}

// ParsePolicy resolves a policy name. Only the exact names FIFO, LRU, OPTIMAL and CLOCK are accepted.
func ParsePolicy(name string) (Policy, error) {
	if i := slices.Index(policyNames, name); i >= 0 {
		return Policy(i), nil
	}
	return -1, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownPolicy, name, strings.Join(policyNames, ", "))
}

func (p Policy) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
