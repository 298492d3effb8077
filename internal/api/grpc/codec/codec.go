// Package codec registers a JSON codec for GRPC payloads.
package codec

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name is the content-subtype the codec is registered under.
const Name = "json"

// Codec marshals GRPC messages as JSON.
type Codec struct{}

func init() {
	encoding.RegisterCodec(Codec{})
}

// Marshal encodes v as JSON.
func (Codec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (Codec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// Name returns the content-subtype of the codec.
func (Codec) Name() string {
	return Name
}
