package login

import (
	"testing"
	"time"
)

func testUser() User {
	return User{
		Profile: Profile{ID: 1, AuthDate: time.Unix(1700000000, 0)},
		Hash:    "00",
	}
}

func TestCompositeWithNoValidators(t *testing.T) {
	composite := NewComposite()

	if got := composite.Validate(testUser()); got != (Valid{}) {
		t.Errorf("expected Valid, got %#v", got)
	}
}

func TestCompositeCombinesResults(t *testing.T) {
	always := func(result Result) Validator {
		return ValidatorFunc(func(User) Result { return result })
	}

	tests := []struct {
		name       string
		validators []Validator
		want       Result
	}{
		{
			name:       "all valid",
			validators: []Validator{always(Valid{}), always(Valid{})},
			want:       Valid{},
		},
		{
			name:       "single failure",
			validators: []Validator{always(Valid{}), always(Invalid{Reason: "reason 2"})},
			want:       Invalid{Reason: "reason 2"},
		},
		{
			name: "multiple failures combined in order",
			validators: []Validator{
				always(Valid{}),
				always(Invalid{Reason: "a"}),
				always(Invalid{Reason: "b"}),
			},
			want: Invalid{Reason: "a, b"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			composite := NewComposite(tc.validators...)
			if got := composite.Validate(testUser()); got != tc.want {
				t.Errorf("expected %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestCompositeRunsEveryValidator(t *testing.T) {
	// Validators after a failure still execute so one response can carry
	// every rejection reason.
	var calls int
	counting := ValidatorFunc(func(User) Result {
		calls++
		return Invalid{Reason: "nope"}
	})

	composite := NewComposite(counting, counting, counting)
	composite.Validate(testUser())

	if calls != 3 {
		t.Errorf("expected all 3 validators to run, got %d calls", calls)
	}
}
