package ber

import (
	"math"
	"strconv"
	"strings"
)

// REAL first content octet (X.690 8.5).
const (
	realBinary   = 0x80
	realNegative = 0x40
	realSpecial  = 0x40

	realPlusInfinity  = 0x40
	realMinusInfinity = 0x41
	realNaN           = 0x42
	realMinusZero     = 0x43
)

func encodeReal(v float64) []byte {
	switch {
	case v == 0:
		if math.Signbit(v) {
			return []byte{realMinusZero}
		}
		return nil
	case math.IsInf(v, 1):
		return []byte{realPlusInfinity}
	case math.IsInf(v, -1):
		return []byte{realMinusInfinity}
	case math.IsNaN(v):
		return []byte{realNaN}
	}

	first := byte(realBinary)
	if v < 0 {
		first |= realNegative
		v = -v
	}

	// v = mantissa * 2^exp with an odd mantissa.
	frac, exp := math.Frexp(v)
	mantissa := uint64(math.Ldexp(frac, 53))
	exp -= 53
	for mantissa&1 == 0 {
		mantissa >>= 1
		exp++
	}

	expBytes := signedBytes(int64(exp))
	first |= byte(len(expBytes) - 1)

	out := make([]byte, 0, 1+len(expBytes)+8)
	out = append(out, first)
	out = append(out, expBytes...)
	return append(out, unsignedBytes(mantissa)...)
}

func decodeReal(c []byte) (float64, error) {
	if len(c) == 0 {
		return 0, nil
	}
	first := c[0]

	if first&realBinary == 0 {
		if first&realSpecial != 0 {
			switch first {
			case realPlusInfinity:
				return math.Inf(1), nil
			case realMinusInfinity:
				return math.Inf(-1), nil
			case realNaN:
				return math.NaN(), nil
			case realMinusZero:
				return math.Copysign(0, -1), nil
			}
			return 0, malformed("unknown special REAL 0x%02x", first)
		}
		// ISO 6093 decimal forms.
		s := strings.TrimSpace(strings.Replace(string(c[1:]), ",", ".", 1))
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, malformed("decimal REAL %q", s)
		}
		return v, nil
	}

	var baseBits int
	switch (first >> 4) & 0x03 {
	case 0:
		baseBits = 1
	case 1:
		baseBits = 3
	case 2:
		baseBits = 4
	default:
		return 0, malformed("reserved REAL base")
	}
	scale := int((first >> 2) & 0x03)

	c = c[1:]
	expLen := int(first&0x03) + 1
	if expLen == 4 {
		if len(c) == 0 {
			return 0, malformed("truncated REAL exponent length")
		}
		expLen = int(c[0])
		c = c[1:]
	}
	if expLen == 0 || expLen > 8 || len(c) < expLen {
		return 0, malformed("REAL exponent of %d octets", expLen)
	}
	exp := int64(int8(c[0]))
	for _, b := range c[1:expLen] {
		exp = exp<<8 | int64(b)
	}

	m := c[expLen:]
	if len(m) > 8 {
		return 0, malformed("REAL mantissa of %d octets", len(m))
	}
	var mantissa uint64
	for _, b := range m {
		mantissa = mantissa<<8 | uint64(b)
	}

	v := math.Ldexp(float64(mantissa), int(exp)*baseBits+scale)
	if first&realNegative != 0 {
		v = -v
	}
	return v, nil
}

// signedBytes returns the minimal two's complement big-endian form of v.
func signedBytes(v int64) []byte {
	n := 1
	for x := v; x < -128 || x > 127; x >>= 8 {
		n++
	}
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

func unsignedBytes(v uint64) []byte {
	n := 1
	for x := v >> 8; x != 0; x >>= 8 {
		n++
	}
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}
