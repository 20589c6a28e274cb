package rolescalc

import (
	"time"

	"github.com/google/uuid"
)

// Decision is a record of one authorization check, suitable for feeding
// into an audit trail.
type Decision struct {
	ID        string    `json:"id"`
	Required  []string  `json:"required"`
	Actual    []string  `json:"actual"`
	Allowed   bool      `json:"allowed"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// observe reports a completed check to the decision hook, if one is set.
func (c *Calc) observe(required, actual []string, allowed bool, err error) {
	if c.decisionHook == nil {
		return
	}

	d := Decision{
		ID:        uuid.New().String(),
		Required:  required,
		Actual:    actual,
		Allowed:   allowed,
		CheckedAt: time.Now(),
	}
	if err != nil {
		d.Error = err.Error()
	}
	c.decisionHook(d)
}
