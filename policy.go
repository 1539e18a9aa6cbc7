package tiercache

import "strings"

// Policy selects the eviction policy of a cache level.
type Policy uint8

const (
	// PolicyLRU evicts the least recently touched entry.
	PolicyLRU Policy = iota + 1
	// PolicyLFU evicts the entry with the smallest access frequency.
	PolicyLFU
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case PolicyLRU:
		return "LRU"
	case PolicyLFU:
		return "LFU"
	default:
		return "unknown"
	}
}

func (p Policy) valid() bool {
	return p == PolicyLRU || p == PolicyLFU
}

// ParsePolicy parses a policy name ("LRU" or "LFU", case-insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LRU":
		return PolicyLRU, nil
	case "LFU":
		return PolicyLFU, nil
	default:
		return 0, &ErrInvalidPolicy{Name: s}
	}
}
