package fst

import "github.com/TheZoq2/fst-native/internal/options"

// Filter selects which signal events ReadSignals delivers to its visitor:
// an inclusive time range, a handle set, or both. The zero value matches
// everything, equivalent to FilterAll.
type Filter struct {
	hasTimeRange bool
	timeMin      uint64
	timeMax      uint64

	hasHandles bool
	handles    map[SignalHandle]struct{}
}

// FilterOption configures a Filter, built with a generic functional-option
// pattern (internal/options).
type FilterOption = options.Option[*Filter]

// FilterAll returns a Filter that matches every event.
func FilterAll() Filter {
	return Filter{}
}

// NewFilter builds a Filter from zero or more options.
func NewFilter(opts ...FilterOption) Filter {
	var f Filter

	_ = options.Apply(&f, opts...)

	return f
}

// WithTimeRange restricts the filter to events whose time falls within
// [min, max] inclusive.
func WithTimeRange(min, max uint64) FilterOption {
	return options.NoError(func(f *Filter) {
		f.hasTimeRange = true
		f.timeMin = min
		f.timeMax = max
	})
}

// WithHandles restricts the filter to events on one of the given handles.
// Calling it more than once replaces the previous handle set rather than
// unioning with it.
func WithHandles(handles ...SignalHandle) FilterOption {
	return options.NoError(func(f *Filter) {
		set := make(map[SignalHandle]struct{}, len(handles))
		for _, h := range handles {
			set[h] = struct{}{}
		}

		f.hasHandles = true
		f.handles = set
	})
}

// matches reports whether an event at time on handle satisfies the filter.
func (f Filter) matches(time uint64, handle SignalHandle) bool {
	if f.hasTimeRange && (time < f.timeMin || time > f.timeMax) {
		return false
	}

	if f.hasHandles {
		if _, ok := f.handles[handle]; !ok {
			return false
		}
	}

	return true
}
