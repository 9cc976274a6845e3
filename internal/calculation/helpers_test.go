package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// assertDecimalNear fails when actual differs from expected by more than tol
func assertDecimalNear(t *testing.T, expected, actual decimal.Decimal, tol string, msgAndArgs ...interface{}) {
	t.Helper()
	difference := actual.Sub(expected).Abs()
	if !difference.LessThanOrEqual(dec(tol)) {
		assert.Fail(t, "decimal mismatch: expected "+expected.String()+", got "+actual.String()+" (difference "+difference.String()+")", msgAndArgs...)
	}
}

// assertDecimalEqual compares by value, ignoring representation differences such as trailing zeros
func assertDecimalEqual(t *testing.T, expected, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !expected.Equal(actual) {
		assert.Fail(t, "decimal mismatch: expected "+expected.String()+", got "+actual.String(), msgAndArgs...)
	}
}
