package login

import "strings"

// Validator checks one aspect of a widget payload, such as hash integrity
// or freshness. Implementations must be safe for concurrent use.
type Validator interface {
	Validate(user User) Result
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(user User) Result

// Validate implements Validator.
func (f ValidatorFunc) Validate(user User) Result {
	return f(user)
}

// Composite delegates validation to an ordered list of validators.
//
// Every validator runs against the same user regardless of earlier failures,
// so a single response carries every reason a login was rejected rather than
// just the first one.
type Composite struct {
	validators []Validator
}

// NewComposite creates a Composite over the given validators.
// With no validators the composite always returns Valid.
func NewComposite(validators ...Validator) *Composite {
	return &Composite{validators: validators}
}

// Validate runs all validators and combines their verdicts. If any return
// Invalid, the reasons are joined with ", " in execution order.
func (c *Composite) Validate(user User) Result {
	var reasons []string
	for _, v := range c.validators {
		if invalid, ok := v.Validate(user).(Invalid); ok {
			reasons = append(reasons, invalid.Reason)
		}
	}
	if len(reasons) == 0 {
		return Valid{}
	}
	return Invalid{Reason: strings.Join(reasons, ", ")}
}
