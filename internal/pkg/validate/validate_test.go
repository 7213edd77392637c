package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email   string `json:"email" validate:"notblank,email"`
	Secret  string `json:"secret" validate:"notblank"`
	Confirm string `json:"confirm" validate:"eqfield=Secret"`
	Note    string `json:"note"`
}

func TestFields_Valid(t *testing.T) {
	errs := Fields(sample{Email: "a@b.co", Secret: "x", Confirm: "x"})
	assert.Empty(t, errs)
}

func TestFields_ReportsEveryFieldByJSONName(t *testing.T) {
	errs := Fields(sample{Email: "nope", Secret: "   ", Confirm: "y"})
	assert.Equal(t, map[string]string{
		"email":   "Must be a valid email address",
		"secret":  "Must not be empty",
		"confirm": "Passwords must match",
	}, errs)
}

func TestFields_BlankEmailIsEmptyNotMalformed(t *testing.T) {
	errs := Fields(sample{Secret: "x", Confirm: "x"})
	assert.Equal(t, "Must not be empty", errs["email"])
}
