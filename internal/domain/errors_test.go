package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "scriptfs.load",
		Kind: KindNotFound,
		Path: "scripts/問天.wy",
		Err:  root,
	}

	require.ErrorIs(t, err, root)

	var got *OpError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, KindNotFound, got.Kind)
	assert.Contains(t, err.Error(), "scripts/問天.wy")
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "config.load", Kind: KindInvalidConfig}

	assert.True(t, IsKind(err, KindInvalidConfig))
	assert.False(t, IsKind(err, KindExecution))
	assert.False(t, IsKind(errors.New("plain"), KindExecution))
}
