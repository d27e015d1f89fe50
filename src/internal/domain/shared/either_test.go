package shared_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/carlosallexandre/fc-micro-videos-admin-sub001/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTooBig = &shared.DomainError{Code: "TOO_BIG", Message: "too big"}

func TestSafe_FactorySucceeds_ReturnsOk(t *testing.T) {
	result, err := shared.Safe(func() (int, error) { return 42, nil })

	require.NoError(t, err)
	assert.True(t, result.IsOk())
	assert.False(t, result.IsFail())
	assert.Equal(t, 42, result.Value())
	assert.Nil(t, result.Failure())
}

func TestSafe_CodedFailure_ReturnsFail(t *testing.T) {
	failure := errTooBig.WithContext("size", 10, "max_size", 5)

	result, err := shared.Safe(func() (int, error) { return 0, failure })

	require.NoError(t, err)
	assert.True(t, result.IsFail())
	assert.ErrorIs(t, result.Failure(), errTooBig)

	var domainErr *shared.DomainError
	require.True(t, errors.As(result.Failure(), &domainErr))
	assert.Equal(t, 10, domainErr.Context["size"])
	assert.Equal(t, 5, domainErr.Context["max_size"])
}

func TestSafe_WrappedCodedFailure_IsRecognized(t *testing.T) {
	result, err := shared.Safe(func() (string, error) {
		return "", fmt.Errorf("building: %w", errTooBig)
	})

	require.NoError(t, err)
	assert.True(t, result.IsFail())
	assert.Equal(t, errTooBig, result.Failure())
}

func TestSafe_UnrecognizedError_PropagatesUnchanged(t *testing.T) {
	boom := errors.New("disk on fire")

	result, err := shared.Safe(func() (int, error) { return 0, boom })

	assert.Same(t, boom, err)
	assert.False(t, result.IsOk())
	assert.False(t, result.IsFail())
}

func TestSafe_Panic_IsNotRecovered(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = shared.Safe(func() (int, error) { panic("programmer error") })
	})
}

func TestSafe_FactoryRunsExactlyOnce(t *testing.T) {
	calls := 0

	_, _ = shared.Safe(func() (int, error) {
		calls++
		return calls, nil
	})

	assert.Equal(t, 1, calls)
}

func TestEither_Unwrap(t *testing.T) {
	v, err := shared.Ok("x").Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	_, err = shared.Fail[string](errTooBig).Unwrap()
	assert.ErrorIs(t, err, errTooBig)
}

func TestEither_OrElse(t *testing.T) {
	assert.Equal(t, 1, shared.Ok(1).OrElse(2))
	assert.Equal(t, 2, shared.Fail[int](errTooBig).OrElse(2))
}

func TestEither_MapAndFlatMap(t *testing.T) {
	doubled := shared.Map(shared.Ok(2), func(v int) int { return v * 2 })
	assert.Equal(t, 4, doubled.Value())

	failed := shared.Map(shared.Fail[int](errTooBig), func(v int) int { return v * 2 })
	assert.True(t, failed.IsFail())

	chained := shared.FlatMap(shared.Ok(2), func(v int) shared.Either[string] {
		return shared.Fail[string](errTooBig)
	})
	assert.True(t, chained.IsFail())
}

func TestFail_NilFailure_Panics(t *testing.T) {
	assert.Panics(t, func() { shared.Fail[int](nil) })
}
