package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// DecodeJSON unmarshals data into v, keeping JSON numbers as json.Number so
// free-form maps round-trip integers beyond 2^53 unchanged.
func DecodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("invalid character after top-level value")
	}
	return nil
}
