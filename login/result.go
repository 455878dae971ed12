package login

// Result is the outcome of a single validation check.
// It is a closed set: Valid or Invalid.
type Result interface {
	isResult()
}

// Valid indicates the check passed. It carries no data, so any two Valid
// values are equal.
type Valid struct{}

// Invalid indicates the check failed, with a human-readable reason.
type Invalid struct {
	Reason string
}

func (Valid) isResult()   {}
func (Invalid) isResult() {}
