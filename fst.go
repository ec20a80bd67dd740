package fst

import (
	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/hierarchy"
	"github.com/TheZoq2/fst-native/section"
	"github.com/TheZoq2/fst-native/vc"
)

// Header is the decoded fixed-layout header section.
type Header = section.Header

// Source is the seekable byte source a Reader is constructed over.
type Source = section.Source

// HierarchyEntry is the sealed entry variant a hierarchy visitor receives;
// see the hierarchy package for the concrete types.
type HierarchyEntry = hierarchy.Entry

// HierarchyVisitor is called once per hierarchy entry, in file order.
// Returning false stops iteration early without error.
type HierarchyVisitor = hierarchy.Visit

// Reader is the public façade over one FST file: it holds the byte
// source, caches the header, and exposes ReadHierarchy and ReadSignals. A
// Reader is not reentrant — calling ReadSignals from within a visitor
// callback is undefined.
type Reader struct {
	src section.Source
	idx section.Index

	widths vc.MapWidthTable

	hierarchyData     []byte
	hierarchyConsumed bool
}

// NewReader scans src's flat section list, decodes the header and geometry
// eagerly, and — if a hierarchy section is present — decompresses and
// parses it once up front to build the per-handle width table ReadSignals
// needs. This is unavoidably eager: ReadSignals must be able to decode
// value-change blocks correctly even if the caller never calls
// ReadHierarchy, and width resolution requires the hierarchy's declared
// variable types. The public ReadHierarchy's single-shot AlreadyConsumed
// contract is tracked independently and is unaffected by this internal
// pass; visit still observes the complete entry sequence on its one
// permitted call.
func NewReader(src section.Source) (*Reader, error) {
	idx, err := section.Scan(src)
	if err != nil {
		return nil, err
	}

	r := &Reader{src: src, idx: idx}

	if idx.HasHierarchy {
		data, err := r.decompressHierarchy()
		if err != nil {
			return nil, err
		}

		r.hierarchyData = data

		widths, err := buildWidthTable(data, idx)
		if err != nil {
			return nil, err
		}

		r.widths = widths
	}

	return r, nil
}

func (r *Reader) decompressHierarchy() ([]byte, error) {
	payload, err := r.idx.Hierarchy.ReadPayload(r.src)
	if err != nil {
		return nil, err
	}

	return hierarchy.Decompress(r.idx.Hierarchy.Kind, payload)
}

// buildWidthTable resolves every declared variable's decode width by
// combining the hierarchy's Var entries (for IsReal and the declared
// length) with the geometry table (for the authoritative bit width) when
// one is present. Geometry wins on Bits when it covers the handle; a
// variable's own declared length is the fallback for files with no
// geometry section, or with fewer geometry entries than variables.
func buildWidthTable(hierarchyData []byte, idx section.Index) (vc.MapWidthTable, error) {
	widths := make(vc.MapWidthTable)

	err := hierarchy.Parse(hierarchyData, func(e hierarchy.Entry) bool {
		v, ok := e.(hierarchy.Var)
		if !ok {
			return true
		}

		bits := v.Length
		if idx.HasGeometry {
			if gw := idx.Geometry.WidthFor(v.Handle); gw > 0 {
				bits = gw
			}
		}

		widths[v.Handle] = vc.HandleWidth{Bits: bits, IsReal: v.Type.IsReal()}

		return true
	})
	if err != nil {
		return nil, err
	}

	return widths, nil
}

// GetHeader returns the file's decoded header. Cheap: the value is parsed
// once in NewReader and cached.
func (r *Reader) GetHeader() Header {
	return r.idx.Header
}

// ReadHierarchy decompresses the hierarchy section (already done once, in
// NewReader) and invokes visit for every entry in file order, stopping
// early if visit returns false.
//
// May be called at most once per Reader; a second call fails with
// errs.ErrAlreadyConsumed. If the file has no hierarchy section, visit is
// never called and ReadHierarchy returns nil.
func (r *Reader) ReadHierarchy(visit HierarchyVisitor) error {
	if r.hierarchyConsumed {
		return errs.ErrAlreadyConsumed
	}

	r.hierarchyConsumed = true

	if !r.idx.HasHierarchy {
		return nil
	}

	return hierarchy.Parse(r.hierarchyData, visit)
}

// SignalVisitor is called once per event ReadSignals delivers, in ascending
// (time, handle) order. Returning false stops iteration early without
// error.
type SignalVisitor func(time uint64, handle SignalHandle, value SignalValue) bool

// ReadSignals iterates every value-change block in file order, decoding
// each one and invoking visit for every event that satisfies filter.
// Unlike ReadHierarchy this may be called any number of times; each call
// re-reads and re-decodes the value-change sections from src.
//
// Frame values (a block's initial state at its start_time) are only
// emitted for the file's first value-change block; DecodeBlock enforces
// this internally.
func (r *Reader) ReadSignals(filter Filter, visit SignalVisitor) error {
	for i, ref := range r.idx.ValueChanges {
		payload, err := ref.ReadPayload(r.src)
		if err != nil {
			return err
		}

		events, err := vc.DecodeBlock(payload, r.widths, i == 0)
		if err != nil {
			return err
		}

		for _, ev := range events {
			handle := SignalHandle(ev.Handle)
			if !filter.matches(ev.Time, handle) {
				continue
			}

			if !visit(ev.Time, handle, ev.Value) {
				return nil
			}
		}
	}

	return nil
}
