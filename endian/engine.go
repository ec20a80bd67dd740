// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface.
// This enables cleaner API design for the fixed-width integers that appear at
// the section level of an FST file.
//
// # Basic Usage
//
// Every fixed-width integer at the section level of an FST file (header
// fields, geometry table lengths, section lengths) is big-endian, so the
// only engine this package exposes is GetBigEndianEngine(). LEB128 values
// inside the hierarchy and value-change payloads are little-endian by
// definition and are handled by the leb128 package instead of this one — do
// not conflate the two.
//
//	import "github.com/TheZoq2/fst-native/endian"
//
//	engine := endian.GetBigEndianEngine()
//	startTime := engine.Uint64(data[0:8])
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instance is immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.BigEndian from the standard library,
// making it fully compatible with existing Go code while providing access to
// both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine used for every fixed-width
// integer field at the section level of an FST file.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
