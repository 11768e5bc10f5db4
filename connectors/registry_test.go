package connectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/pushsub/api"
)

func TestRegistry_EachTypeHasItsOwnBuilder(t *testing.T) {
	// Every registered output type must construct a connector reporting
	// that same type, not a shared one.
	for _, name := range Types() {
		t.Run(name, func(t *testing.T) {
			c, err := New(name)
			require.NoError(t, err)
			assert.Equal(t, name, c.Type())
		})
	}
}

func TestRegistry_BuiltinTypes(t *testing.T) {
	assert.Equal(t, []string{
		TypeBigQuery, TypeCouchDB, TypeDynamoDB, TypeElasticSearch,
		TypeFTP, TypeHTTP, TypeMongoDB, TypeRedis, TypeS3, TypeSFTP,
		TypeSplunk,
	}, Types())
}

func TestRegistry_UnknownType(t *testing.T) {
	_, err := New("teleport")
	require.Error(t, err)
	assert.True(t, api.IsInvalidData(err))
	assert.ErrorContains(t, err, "teleport")

	assert.False(t, Has("teleport"))
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	c, err := New("S3")
	require.NoError(t, err)
	assert.Equal(t, TypeS3, c.Type())

	assert.True(t, Has("HTTP"))
}

func TestRegistry_FromMap(t *testing.T) {
	c, err := FromMap("redis", map[string]interface{}{
		"host": "localhost",
		"port": 6379,
		"bad":  nil,
	})
	require.NoError(t, err)

	assert.Equal(t, TypeRedis, c.Type())
	assert.Equal(t, map[string]string{
		"output_params.host": "localhost",
		"output_params.port": "6379",
	}, c.Parameters().Map())
}

func TestRegistry_FromMap_UnknownType(t *testing.T) {
	_, err := FromMap("teleport", map[string]interface{}{"host": "x"})
	assert.True(t, api.IsInvalidData(err))
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("custom", func() Connector { return NewHTTP() }))

	err := r.Register("CUSTOM", func() Connector { return NewHTTP() })
	require.Error(t, err)
	assert.True(t, api.IsInvalidData(err))
}

func TestRegistry_Empty(t *testing.T) {
	r := NewRegistry()

	assert.Empty(t, r.Types())
	_, err := r.New("http")
	assert.Error(t, err)
}
