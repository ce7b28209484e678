package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexInt is an integer read from upstream JSON that never fails decoding.
// Integral numbers and numeric strings ("3") are accepted, anything else,
// including values outside the int32 range, leaves it invalid so that the
// field resolves to null.
type FlexInt struct {
	Value int32
	Valid bool
}

// NewFlexInt returns a valid FlexInt.
func NewFlexInt(v int32) FlexInt {
	return FlexInt{Value: v, Valid: true}
}

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	*i = FlexInt{}
	v, ok := decodeScalar(b)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case json.Number:
		i.setFromString(t.String())
	case string:
		i.setFromString(strings.TrimSpace(t))
	}
	return nil
}

func (i *FlexInt) setFromString(s string) {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		*i = NewFlexInt(int32(n))
		return
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return
	}
	*i = NewFlexInt(int32(f))
}

// Ptr returns nil for an invalid value.
func (i FlexInt) Ptr() *int32 {
	if !i.Valid {
		return nil
	}
	v := i.Value
	return &v
}

// FlexString is a string read from upstream JSON that never fails decoding.
// Numbers and booleans are kept in their JSON text form, objects and arrays
// leave it invalid.
type FlexString struct {
	Value string
	Valid bool
}

// NewFlexString returns a valid FlexString.
func NewFlexString(v string) FlexString {
	return FlexString{Value: v, Valid: true}
}

func (s *FlexString) UnmarshalJSON(b []byte) error {
	*s = FlexString{}
	v, ok := decodeScalar(b)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		*s = NewFlexString(t)
	case json.Number:
		*s = NewFlexString(t.String())
	case bool:
		*s = NewFlexString(strconv.FormatBool(t))
	}
	return nil
}

// Ptr returns nil for an invalid value.
func (s FlexString) Ptr() *string {
	if !s.Valid {
		return nil
	}
	v := s.Value
	return &v
}

// decodeScalar decodes a single JSON value keeping numbers as json.Number.
// ok is false for null and undecodable input.
func decodeScalar(b []byte) (v interface{}, ok bool) {
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()
	if err := d.Decode(&v); err != nil {
		return nil, false
	}
	return v, v != nil
}
