package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, data string) Object {
	t.Helper()
	obj, err := ParseObject([]byte(data))
	require.NoError(t, err)
	return obj
}

func TestParseObject_Invalid(t *testing.T) {
	_, err := ParseObject([]byte("not json"))
	assert.Error(t, err)
}

func TestObject_String(t *testing.T) {
	obj := parse(t, `{"name":"My Sub","id":42}`)

	name, err := obj.String("name")
	assert.NoError(t, err)
	assert.Equal(t, "My Sub", name)

	_, err = obj.String("missing")
	assert.ErrorContains(t, err, `field "missing" not found`)

	_, err = obj.String("id")
	assert.ErrorContains(t, err, "expected string")
}

func TestObject_Int64(t *testing.T) {
	// Large enough to lose precision through a float64 round trip.
	obj := parse(t, `{"id":9007199254740995,"name":"x"}`)

	id, err := obj.Int64("id")
	assert.NoError(t, err)
	assert.Equal(t, int64(9007199254740995), id)

	_, err = obj.Int64("missing")
	assert.ErrorContains(t, err, "not found")

	_, err = obj.Int64("name")
	assert.ErrorContains(t, err, "expected integer")
}

func TestObject_Object(t *testing.T) {
	obj := parse(t, `{"output_params":{"url":"https://example.com"},"id":1}`)

	nested, err := obj.Object("output_params")
	assert.NoError(t, err)
	url, err := nested.String("url")
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com", url)

	_, err = obj.Object("missing")
	assert.Error(t, err)

	_, err = obj.Object("id")
	assert.ErrorContains(t, err, "expected object")
}

func TestObject_ObjectArray(t *testing.T) {
	obj := parse(t, `{"subscriptions":[{"id":1},{"id":2}],"count":2,"mixed":[{"id":1},"oops"]}`)

	items, err := obj.ObjectArray("subscriptions")
	assert.NoError(t, err)
	require.Len(t, items, 2)
	id, err := items[1].Int64("id")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), id)

	_, err = obj.ObjectArray("missing")
	assert.Error(t, err)

	_, err = obj.ObjectArray("count")
	assert.ErrorContains(t, err, "expected array")

	_, err = obj.ObjectArray("mixed")
	assert.ErrorContains(t, err, "element 1")
}

func TestObject_StringMap(t *testing.T) {
	obj := parse(t, `{"output_params":{"url":"x","port":8080,"verify":true,"empty":null}}`)

	m, err := obj.StringMap("output_params")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{
		"url":    "x",
		"port":   "8080",
		"verify": "true",
	}, m)
}

func TestObject_StringMap_RejectsNested(t *testing.T) {
	obj := parse(t, `{"output_params":{"nested":{"a":1}}}`)

	_, err := obj.StringMap("output_params")
	assert.ErrorContains(t, err, "expected a scalar")
}

func TestObject_Encode(t *testing.T) {
	obj := Object{"name": "My Sub"}

	encoded, err := obj.Encode()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"name":"My Sub"}`, encoded)
}
