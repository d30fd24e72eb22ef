package common

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

type Decoder struct {
	buf *bytes.Reader
}

func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: bytes.NewReader(b)}
}

func (dec *Decoder) DecodeRational() (Rational, error) {
	err := dec.readHeader()
	if err != nil {
		return ZeroRat, err
	}
	r, err := dec.ReadRational()
	if err != nil {
		return ZeroRat, err
	}
	if dec.buf.Len() > 0 {
		return ZeroRat, fmt.Errorf("unexpected ending %d", dec.buf.Len())
	}
	return r, nil
}

func (dec *Decoder) DecodeRationals() ([]Rational, error) {
	err := dec.readHeader()
	if err != nil {
		return nil, err
	}
	l, err := dec.ReadInt()
	if err != nil {
		return nil, err
	}
	rs := make([]Rational, l)
	for i := range rs {
		r, err := dec.ReadRational()
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	if dec.buf.Len() > 0 {
		return nil, fmt.Errorf("unexpected ending %d", dec.buf.Len())
	}
	return rs, nil
}

func (dec *Decoder) readHeader() error {
	ok, err := dec.ReadMagic()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("null rational")
	}
	var ver [2]byte
	err = dec.Read(ver[:])
	if err != nil {
		return err
	}
	if ver[0] != 0 || ver[1] != EncodingVersion {
		return fmt.Errorf("invalid version %v", ver)
	}
	return nil
}

func (dec *Decoder) ReadRational() (Rational, error) {
	var r Rational
	flags, err := dec.buf.ReadByte()
	if err != nil {
		return r, err
	}
	if flags&^(encodingNegativeNumerator|encodingNegativeDenominator) != 0 {
		return r, fmt.Errorf("invalid rational flags %x", flags)
	}
	n, err := dec.ReadBytes()
	if err != nil {
		return r, err
	}
	d, err := dec.ReadBytes()
	if err != nil {
		return r, err
	}
	r.n.SetBytes(n)
	r.d.SetBytes(d)
	if r.d.Sign() == 0 {
		return r, fmt.Errorf("ReadRational %w", ErrInvalidRational)
	}
	if flags&encodingNegativeNumerator != 0 {
		r.n.Neg(&r.n)
	}
	if flags&encodingNegativeDenominator != 0 {
		r.d.Neg(&r.d)
	}
	return r, nil
}

func (dec *Decoder) Read(b []byte) error {
	l, err := dec.buf.Read(b)
	if err != nil {
		return err
	}
	if l != len(b) {
		return fmt.Errorf("data short %d %d", l, len(b))
	}
	return nil
}

func (dec *Decoder) ReadInt() (int, error) {
	d, err := dec.ReadUint16()
	return int(d), err
}

func (dec *Decoder) ReadUint16() (uint16, error) {
	var b [2]byte
	err := dec.Read(b[:])
	if err != nil {
		return 0, err
	}
	d := binary.BigEndian.Uint16(b[:])
	if d > MaximumEncodingInt {
		return 0, fmt.Errorf("large int %d", d)
	}
	return d, nil
}

func (dec *Decoder) ReadBytes() ([]byte, error) {
	l, err := dec.ReadInt()
	if err != nil {
		return nil, err
	}
	if l == 0 {
		return nil, nil
	}
	b := make([]byte, l)
	err = dec.Read(b)
	return b, err
}

func (dec *Decoder) ReadMagic() (bool, error) {
	var b [2]byte
	err := dec.Read(b[:])
	if err != nil {
		return false, err
	}
	if bytes.Equal(magic, b[:]) {
		return true, nil
	}
	if bytes.Equal(null, b[:]) {
		return false, nil
	}
	return false, fmt.Errorf("malformed %v", b)
}
