package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMalformedRowError(t *testing.T) {
	cause := errors.New("invalid syntax")
	err := &MalformedRowError{Row: 7, Field: "amount", Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), "row 7")
	assert.Contains(t, err.Error(), "amount")
	assert.Contains(t, err.Error(), `"abc"`)
	assert.ErrorIs(t, err, cause)
}

func TestMalformedRowErrorAs(t *testing.T) {
	var wrapped error = fmt.Errorf("normalizing batch: %w",
		&MalformedRowError{Row: 1, Field: "scenario", Value: "X"})

	var malformed *MalformedRowError
	assert.ErrorAs(t, wrapped, &malformed)
	assert.Equal(t, "scenario", malformed.Field)
}

func TestUnclassifiedAccountError(t *testing.T) {
	err := &UnclassifiedAccountError{AccountCode: "9999"}
	assert.Contains(t, err.Error(), "9999")
	assert.Contains(t, err.Error(), "P&L group")
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Source: "dim_date.csv", Reason: "no rows"}
	assert.Contains(t, err.Error(), "dim_date.csv")
	assert.Contains(t, err.Error(), "no rows")
}
