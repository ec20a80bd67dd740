// Package fst reads GTKWave FST waveform containers: a compressed
// hierarchy of scopes and variables, followed by one or more value-change
// blocks carrying the signal events those variables take on over time.
//
// Construct a Reader over a seekable Source, call GetHeader for the cheap
// cached file metadata, ReadHierarchy once to walk the variable
// declarations, and ReadSignals (any number of times, optionally filtered)
// to walk the decoded (time, handle, value) events in file order.
package fst
