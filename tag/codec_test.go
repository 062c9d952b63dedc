package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAttributeValue(t *testing.T) {
	data := []byte(`[
		{"x":0.25,"y":0.5,"id":"a","link":{"url":"https://x","text":"x"}},
		{"x":1,"y":0,"id":"b","link":{}}
	]`)

	c, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Collection{
		{ID: "a", X: 0.25, Y: 0.5, Link: Link{URL: "https://x", Text: "x"}},
		{ID: "b", X: 1, Y: 0},
	}, c)
}

func TestDecodeEmpty(t *testing.T) {
	for _, in := range []string{"", "null", "[]"} {
		c, err := Decode([]byte(in))
		require.NoError(t, err, in)
		assert.NotNil(t, c, in)
		assert.Empty(t, c, in)
	}
}

func TestDecodeRejectsInvalid(t *testing.T) {
	cases := map[string]error{
		`[{"x":0.1,"y":0.1,"id":"a"},{"x":0.2,"y":0.2,"id":"a"}]`: ErrDuplicateID,
		`[{"x":1.5,"y":0.1,"id":"a"}]`:                            ErrOutOfRange,
		`[{"x":0.1,"y":-0.1,"id":"a"}]`:                           ErrOutOfRange,
		`[{"x":0.1,"y":0.1}]`:                                     ErrMissingID,
	}
	for in, want := range cases {
		_, err := Decode([]byte(in))
		assert.ErrorIs(t, err, want, in)
	}

	_, err := Decode([]byte(`{not json`))
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	c := Collection{
		{ID: "a", X: 0.25, Y: 0.5, Link: Link{URL: "https://x", Text: "x"}},
		{ID: "b", X: 0.75, Y: 0.125},
	}

	data, err := Encode(c)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id":"a","x":0.25,"y":0.5,"link":{"url":"https://x","text":"x"}},
		{"id":"b","x":0.75,"y":0.125,"link":{}}
	]`, string(data))

	back, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, Equal(c, back))
}

func TestEncodeNil(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
