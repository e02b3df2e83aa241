package model

import (
	"encoding/json"
	"fmt"
)

// RevisionPolicy is the tri-state revision agreement: a fixed count,
// unlimited, or undecided (a nil *RevisionPolicy). The wizard sends it
// as a JSON number, the string "unlimited", or null.
type RevisionPolicy struct {
	Unlimited bool
	Count     int
}

// NewRevisionCount returns a fixed-count policy.
func NewRevisionCount(n int) *RevisionPolicy {
	return &RevisionPolicy{Count: n}
}

// NewRevisionUnlimited returns the unlimited policy.
func NewRevisionUnlimited() *RevisionPolicy {
	return &RevisionPolicy{Unlimited: true}
}

func (r *RevisionPolicy) MarshalJSON() ([]byte, error) {
	if r.Unlimited {
		return json.Marshal("unlimited")
	}
	return json.Marshal(r.Count)
}

func (r *RevisionPolicy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "unlimited" {
			return fmt.Errorf("invalid revision policy %q", s)
		}
		r.Unlimited = true
		r.Count = 0
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid revision policy: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("revision count must be non-negative, got %d", n)
	}
	r.Unlimited = false
	r.Count = n
	return nil
}

// String renders the policy for documents and logs.
func (r *RevisionPolicy) String() string {
	if r == nil {
		return ""
	}
	if r.Unlimited {
		return "unlimited"
	}
	return fmt.Sprintf("%d", r.Count)
}
