package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/pushsub/api"
)

func TestNew_UnknownOutputType(t *testing.T) {
	_, err := New(&fakeCaller{}, "teleport")
	require.Error(t, err)
	assert.True(t, api.IsInvalidData(err))
	assert.ErrorContains(t, err, "teleport")
}

func TestNew_NilCaller(t *testing.T) {
	_, err := New(nil, "http")
	assert.True(t, api.IsInvalidData(err))
}

func TestNew_CaseInsensitive(t *testing.T) {
	lower, err := New(&fakeCaller{}, "http")
	require.NoError(t, err)
	upper, err := New(&fakeCaller{}, "HTTP")
	require.NoError(t, err)

	assert.Equal(t, lower.OutputType(), upper.OutputType())
	assert.Equal(t, int64(0), upper.ID())
	assert.Equal(t, lower.Status(), upper.Status())
}

func TestNewWithTarget(t *testing.T) {
	sub, err := NewWithTarget(&fakeCaller{}, "http", HashTypeStream, "abc123", "My Sub", "")
	require.NoError(t, err)

	assert.Equal(t, int64(0), sub.ID())
	assert.Equal(t, HashTypeStream, sub.HashType())
	assert.Equal(t, "abc123", sub.Hash())
	assert.Equal(t, "My Sub", sub.Name())
	assert.Equal(t, Status(""), sub.Status())
}

func TestNewWithTarget_UnknownHashType(t *testing.T) {
	_, err := NewWithTarget(&fakeCaller{}, "http", "realtime", "abc123", "My Sub", "")
	require.Error(t, err)
	assert.True(t, api.IsInvalidData(err))
	assert.ErrorContains(t, err, "realtime")
}

func TestOutputTypes(t *testing.T) {
	assert.Contains(t, OutputTypes(), OutputTypeHTTP)
}

func TestHashType_Valid(t *testing.T) {
	assert.True(t, HashTypeStream.Valid())
	assert.True(t, HashTypeHistoric.Valid())
	assert.False(t, HashType("realtime").Valid())
	assert.False(t, HashType("").Valid())
}
