// Package bitio provides the variable-width bit/nibble unpacking primitives
// used to reconstruct packed 2-state and 9-state bit-vector values out of an
// FST value-change waveform record.
//
// Two packing schemes appear in waveform records:
//
//   - 2-state: one bit per signal bit, MSB-first, the whole record
//     zero-padded on the MSB side up to a whole byte.
//   - 9-state: one 4-bit nibble per signal bit (two nibbles per byte,
//     high nibble first), drawn from the alphabet {0,1,x,z,h,u,w,l,-}.
package bitio

import "github.com/TheZoq2/fst-native/errs"

// nineStateAlphabet maps a waveform nibble value to its ASCII character.
// Nibble values 9-15 are reserved by the format and are not emitted by any
// known writer; this reader treats them as corrupt data rather than
// guessing at a meaning.
var nineStateAlphabet = [16]byte{
	0: '0', 1: '1', 2: 'x', 3: 'z', 4: 'h', 5: 'u', 6: 'w', 7: 'l', 8: '-',
}

// PackedByteLen returns the number of raw bytes needed to hold a 2-state
// packed bit-vector of the given width.
func PackedByteLen(bits int) int {
	return (bits + 7) / 8
}

// NibbleByteLen returns the number of raw bytes needed to hold a 9-state
// nibble-packed bit-vector of the given width.
func NibbleByteLen(bits int) int {
	return (bits + 1) / 2
}

// UnpackTwoState decodes a 2-state packed bit-vector of the given bit width
// into its ASCII ('0'/'1') representation.
//
// The vector is MSB-first across the byte array; when bits is not a
// multiple of 8, the leading byte's high-order bits are padding and are
// discarded rather than emitted.
func UnpackTwoState(data []byte, bits int) (string, error) {
	need := PackedByteLen(bits)
	if len(data) < need {
		return "", errs.ErrCorruptBlock
	}

	totalBits := need * 8
	padBits := totalBits - bits

	out := make([]byte, bits)
	for i := 0; i < bits; i++ {
		bitPos := padBits + i
		byteIdx := bitPos / 8
		shift := 7 - uint(bitPos%8)
		bit := (data[byteIdx] >> shift) & 1
		if bit == 0 {
			out[i] = '0'
		} else {
			out[i] = '1'
		}
	}

	return string(out), nil
}

// UnpackNineState decodes a nibble-packed bit-vector of the given bit width
// into its ASCII representation over the nine-state alphabet.
func UnpackNineState(data []byte, bits int) (string, error) {
	need := NibbleByteLen(bits)
	if len(data) < need {
		return "", errs.ErrCorruptBlock
	}

	out := make([]byte, bits)
	for i := 0; i < bits; i++ {
		b := data[i/2]

		var nibble byte
		if i%2 == 0 {
			nibble = b >> 4
		} else {
			nibble = b & 0x0f
		}

		ch := nineStateAlphabet[nibble]
		if ch == 0 {
			return "", errs.ErrCorruptBlock
		}

		out[i] = ch
	}

	return string(out), nil
}
