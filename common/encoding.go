package common

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	MaximumEncodingInt = 0xFFFF

	EncodingVersion = 0x01

	encodingNegativeNumerator   = byte(0x01)
	encodingNegativeDenominator = byte(0x02)
)

var (
	magic = []byte{0x52, 0x51}
	null  = []byte{0x00, 0x00}
)

type Encoder struct {
	buf *bytes.Buffer
}

func NewEncoder() *Encoder {
	return &Encoder{buf: new(bytes.Buffer)}
}

func (enc *Encoder) EncodeRational(r Rational) []byte {
	enc.Write(magic)
	enc.Write([]byte{0x00, EncodingVersion})
	enc.WriteRational(r)
	return enc.buf.Bytes()
}

func (enc *Encoder) EncodeRationals(rs []Rational) []byte {
	enc.Write(magic)
	enc.Write([]byte{0x00, EncodingVersion})
	enc.WriteInt(len(rs))
	for _, r := range rs {
		enc.WriteRational(r)
	}
	return enc.buf.Bytes()
}

func (enc *Encoder) EncodeNull() []byte {
	enc.Write(null)
	return enc.buf.Bytes()
}

func (enc *Encoder) Write(b []byte) {
	l, err := enc.buf.Write(b)
	if err != nil {
		panic(err)
	}
	if l != len(b) {
		panic(b)
	}
}

func (enc *Encoder) WriteByte(b byte) error {
	err := enc.buf.WriteByte(b)
	if err != nil {
		panic(err)
	}
	return nil
}

func (enc *Encoder) WriteInt(d int) {
	if d > MaximumEncodingInt {
		panic(d)
	}
	b := uint16ToByte(uint16(d))
	enc.Write(b)
}

// WriteRational writes a sign flags byte followed by the magnitudes of the
// stored numerator and denominator, each length prefixed. Operands whose
// magnitude exceeds MaximumEncodingInt bytes can not be encoded.
func (enc *Encoder) WriteRational(r Rational) {
	var flags byte
	if r.num().Sign() < 0 {
		flags |= encodingNegativeNumerator
	}
	if r.den().Sign() < 0 {
		flags |= encodingNegativeDenominator
	}
	enc.WriteByte(flags)
	enc.writeMagnitude(r.num().Bytes())
	enc.writeMagnitude(r.den().Bytes())
}

func (r Rational) checkEncoding() error {
	nl, dl := len(r.num().Bytes()), len(r.den().Bytes())
	if nl > MaximumEncodingInt || dl > MaximumEncodingInt {
		return fmt.Errorf("rational too large to encode %d %d %w", nl, dl, ErrEncodingOverflow)
	}
	return nil
}

func (enc *Encoder) writeMagnitude(b []byte) {
	enc.WriteInt(len(b))
	enc.Write(b)
}

func uint16ToByte(d uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, d)
	return b
}
