package common

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMsgpack(t *testing.T) {
	assert := assert.New(t)

	r := NewRational(-2, 4)
	p, err := r.MarshalMsgpack()
	assert.Nil(err)
	assert.Equal("01000102000104", hex.EncodeToString(p))

	var v Rational
	err = v.UnmarshalMsgpack(p)
	assert.Nil(err)
	assert.Equal(int64(-2), v.Num().Int64())
	assert.Equal(int64(4), v.Denom().Int64())

	err = MsgpackUnmarshal(MsgpackMarshalPanic(NewRational(3, -9)), &v)
	assert.Nil(err)
	assert.Equal(int64(3), v.Num().Int64())
	assert.Equal(int64(-9), v.Denom().Int64())
	assert.Equal("-1/3", v.String())

	var list struct {
		Name   string
		Values []Rational
	}
	list.Name = "thirds"
	list.Values = []Rational{NewRational(1, 3), NewRational(2, 6), ZeroRat}
	payload := CompressMsgpackMarshalPanic(list)
	list.Name, list.Values = "", nil
	err = DecompressMsgpackUnmarshal(payload, &list)
	assert.Nil(err)
	assert.Equal("thirds", list.Name)
	assert.Len(list.Values, 3)
	assert.Equal(int64(2), list.Values[1].Num().Int64())
	assert.Equal(int64(6), list.Values[1].Denom().Int64())
	assert.Equal("0", list.Values[2].String())

	err = DecompressMsgpackUnmarshal(MsgpackMarshalPanic(list), &list)
	assert.Nil(err)
	assert.Len(list.Values, 3)

	err = v.UnmarshalMsgpack([]byte{0x00, 0x00, 0x01, 0x01, 0x00, 0x00})
	assert.True(errors.Is(err, ErrInvalidRational))
	err = v.UnmarshalMsgpack([]byte{0x04, 0x00, 0x00, 0x00, 0x01, 0x01})
	assert.NotNil(err)
	err = v.UnmarshalMsgpack([]byte{0x00, 0x00})
	assert.NotNil(err)

	third := NewRational(1, 3)
	w := third
	p, err = NewRational(5, 8).MarshalMsgpack()
	assert.Nil(err)
	err = w.UnmarshalMsgpack(p)
	assert.Nil(err)
	assert.Equal("5/8", w.String())
	assert.Equal("1/3", third.String())

	huge := new(big.Int).Lsh(big.NewInt(1), 8*MaximumEncodingInt)
	r, err = NewRationalFromBig(huge, big.NewInt(1))
	assert.Nil(err)
	_, err = r.MarshalMsgpack()
	assert.True(errors.Is(err, ErrEncodingOverflow))

	data := Compress([]byte("rational rational rational"))
	assert.Equal("rational rational rational", string(Decompress(data)))
	assert.Nil(Decompress([]byte{1, 2, 3}))
}

func TestJSON(t *testing.T) {
	assert := assert.New(t)

	j, err := json.Marshal(NewRational(117, 1098))
	assert.Nil(err)
	assert.Equal(`"13/122"`, string(j))

	var v struct {
		A Rational `json:"a"`
		B Rational `json:"b"`
	}
	err = json.Unmarshal([]byte(`{"a":"3/-6","b":42}`), &v)
	assert.Nil(err)
	assert.Equal("-1/2", v.A.String())
	assert.Equal(int64(-6), v.A.Denom().Int64())
	assert.Equal("42", v.B.String())

	half := NewRational(1, 2)
	v.A = half
	err = json.Unmarshal([]byte(`{"a":"7/9"}`), &v)
	assert.Nil(err)
	assert.Equal("7/9", v.A.String())
	assert.Equal("1/2", half.String())

	err = json.Unmarshal([]byte(`{"a":null,"b":"2/3"}`), &v)
	assert.Nil(err)
	assert.Equal("7/9", v.A.String())
	assert.Equal("2/3", v.B.String())

	err = json.Unmarshal([]byte(`{"a":"1/0"}`), &v)
	assert.True(errors.Is(err, ErrInvalidRational))
	err = json.Unmarshal([]byte(`{"a":"x"}`), &v)
	assert.True(errors.Is(err, ErrParse))
}

func TestEncoding(t *testing.T) {
	assert := assert.New(t)

	r := NewRational(-10, -4)
	b := NewEncoder().EncodeRational(r)
	assert.Equal("52510001030001" + "0a" + "000104", hex.EncodeToString(b))
	v, err := NewDecoder(b).DecodeRational()
	assert.Nil(err)
	assert.Equal(int64(-10), v.Num().Int64())
	assert.Equal(int64(-4), v.Denom().Int64())

	rs := []Rational{NewRational(1, 2), NewRational(-7, 3), Rational{}}
	b = NewEncoder().EncodeRationals(rs)
	vs, err := NewDecoder(b).DecodeRationals()
	assert.Nil(err)
	assert.Len(vs, 3)
	for i := range rs {
		assert.True(rs[i].Equal(vs[i]))
	}

	_, err = NewDecoder(NewEncoder().EncodeNull()).DecodeRational()
	assert.NotNil(err)
	_, err = NewDecoder(append(NewEncoder().EncodeRational(r), 0)).DecodeRational()
	assert.NotNil(err)
	_, err = NewDecoder([]byte{0x52, 0x51, 0x00, 0x02}).DecodeRational()
	assert.NotNil(err)
	_, err = NewDecoder([]byte{0x12, 0x34}).DecodeRational()
	assert.NotNil(err)
}
