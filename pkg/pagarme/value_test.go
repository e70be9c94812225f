package pagarme_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

func TestDecodeValue_PreservesKeyOrder(t *testing.T) {
	doc := []byte(`{"zeta":1,"alpha":2,"mid":{"b":true,"a":false}}`)

	value, err := pagarme.DecodeValue(doc)
	require.NoError(t, err)

	assert.Equal(t, pagarme.KindObject, value.Kind())
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, value.Keys())
	assert.Equal(t, []string{"b", "a"}, value.Get("mid").Keys())

	encoded, err := json.Marshal(value)
	require.NoError(t, err)
	assert.Equal(t, string(doc), string(encoded))
}

func TestDecodeValue_Scalars(t *testing.T) {
	value, err := pagarme.DecodeValue([]byte(`{"s":"hi","n":42,"f":1.5,"b":true,"z":null}`))
	require.NoError(t, err)

	assert.Equal(t, "hi", value.Get("s").String())
	assert.Equal(t, int64(42), value.Get("n").Int())
	assert.InDelta(t, 1.5, value.Get("f").Float(), 0.0001)
	assert.True(t, value.Get("b").Bool())
	assert.True(t, value.Get("z").IsNull())
}

func TestDecodeValue_TrailingData(t *testing.T) {
	_, err := pagarme.DecodeValue([]byte(`{"a":1} {"b":2}`))
	require.ErrorIs(t, err, pagarme.ErrTrailingData)
}

func TestValue_ForgivingAccessors(t *testing.T) {
	value, err := pagarme.DecodeValue([]byte(`{"list":[1,2],"name":"x"}`))
	require.NoError(t, err)

	assert.True(t, value.Get("missing").IsNull())
	assert.True(t, value.Get("list").Index(5).IsNull())
	assert.True(t, value.Get("name").Index(0).IsNull())
	assert.True(t, value.Get("name").Get("nested").IsNull())
	assert.Equal(t, "", value.Get("list").String())
	assert.Equal(t, int64(0), value.Get("name").Int())
	assert.Equal(t, 0, value.Get("name").Len())
}

func TestValue_ArrayTraversal(t *testing.T) {
	value, err := pagarme.DecodeValue([]byte(`{"data":[{"id":"a"},{"id":"b"}]}`))
	require.NoError(t, err)

	data := value.Get("data")
	assert.Equal(t, pagarme.KindArray, data.Kind())
	assert.Equal(t, 2, data.Len())
	assert.Equal(t, "a", data.Index(0).Get("id").String())
	assert.Equal(t, "b", data.Index(1).Get("id").String())
}

func TestValue_NumberPrecision(t *testing.T) {
	// int64 range values must survive the round trip without float drift
	value, err := pagarme.DecodeValue([]byte(`{"amount":9007199254740993}`))
	require.NoError(t, err)

	assert.Equal(t, int64(9007199254740993), value.Get("amount").Int())

	encoded, err := json.Marshal(value)
	require.NoError(t, err)
	assert.Equal(t, `{"amount":9007199254740993}`, string(encoded))
}

func TestValue_Equal(t *testing.T) {
	left, err := pagarme.DecodeValue([]byte(`{"a":1,"b":[true,"x"]}`))
	require.NoError(t, err)

	same, err := pagarme.DecodeValue([]byte(`{"a":1,"b":[true,"x"]}`))
	require.NoError(t, err)

	reordered, err := pagarme.DecodeValue([]byte(`{"b":[true,"x"],"a":1}`))
	require.NoError(t, err)

	assert.True(t, left.Equal(same))
	assert.False(t, left.Equal(reordered), "key order is part of equality")
	assert.True(t, pagarme.EmptyArray().Equal(pagarme.EmptyArray()))
	assert.False(t, pagarme.EmptyArray().Equal(pagarme.EmptyObject()))
}

func TestValue_Constructors(t *testing.T) {
	assert.Equal(t, pagarme.KindArray, pagarme.EmptyArray().Kind())
	assert.Equal(t, 0, pagarme.EmptyArray().Len())
	assert.Equal(t, pagarme.KindObject, pagarme.EmptyObject().Kind())
	assert.Equal(t, "hello", pagarme.StringValue("hello").String())
}

func TestValue_MarshalEmptyContainers(t *testing.T) {
	encodedArray, err := json.Marshal(pagarme.EmptyArray())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(encodedArray))

	encodedObject, err := json.Marshal(pagarme.EmptyObject())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(encodedObject))
}
