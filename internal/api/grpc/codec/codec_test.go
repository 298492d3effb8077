package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(Name)
	require.NotNil(t, c)
	assert.Equal(t, Name, c.Name())
}

func TestCodec_RoundTrip(t *testing.T) {
	type message struct {
		ID   string   `json:"id"`
		Tags []string `json:"tags"`
	}
	in := message{ID: "J001", Tags: []string{"ramen"}}
	b, err := Codec{}.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"J001","tags":["ramen"]}`, string(b))
	var out message
	require.NoError(t, Codec{}.Unmarshal(b, &out))
	assert.Equal(t, in, out)
	assert.Error(t, Codec{}.Unmarshal([]byte("{"), &out))
}
