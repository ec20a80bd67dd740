package fst

// SignalHandle is an opaque 1-based identifier into a file's flat variable
// table. It wraps a uint64 so callers can't accidentally use a handle as a
// 0-based array index without going through GetIndex first.
type SignalHandle uint64

// GetIndex returns the 0-based offset corresponding to this handle.
func (h SignalHandle) GetIndex() int {
	return int(h) - 1
}
