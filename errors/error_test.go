package errors

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestNewInvariantViolationNilWhenEmpty(t *testing.T) {
	require.NoError(t, NewInvariantViolation(nil))
	require.NoError(t, NewInvariantViolation(&multierror.Error{}))
}

func TestNewInvariantViolationCollectsAll(t *testing.T) {
	var violations *multierror.Error
	violations = multierror.Append(violations, errors.New("first"))
	violations = multierror.Append(violations, errors.New("second"))

	err := NewInvariantViolation(violations)
	require.Error(t, err)
	require.Contains(t, err.Error(), "first")
	require.Contains(t, err.Error(), "second")
}

func TestUpstreamStageFailedUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := UpstreamStageFailedError{Cause: cause}
	require.ErrorIs(t, err, cause)
}
