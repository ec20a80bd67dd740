package fst

import "github.com/TheZoq2/fst-native/vc"

// SignalValue is the decoded payload of one signal event: either a
// bit-vector string or a real number, never both.
type SignalValue = vc.Value

// ValueKind discriminates SignalValue's two variants.
type ValueKind = vc.ValueKind

const (
	// KindString marks a bit-vector value rendered over the two- or
	// nine-state alphabet.
	KindString = vc.KindString
	// KindReal marks a floating-point value.
	KindReal = vc.KindReal
)
