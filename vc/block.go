package vc

import (
	"sort"

	"github.com/TheZoq2/fst-native/endian"
	"github.com/TheZoq2/fst-native/errs"
	"github.com/TheZoq2/fst-native/internal/leb128"
)

// blockPrefixLen is the byte length of a value-change block's fixed
// start_time/end_time/mem_used_by_writer prefix, before the frame
// sub-region begins.
const blockPrefixLen = 8 + 8 + 8

// DecodeBlock decodes one value-change section's payload into its ordered
// sequence of events. isFirstBlock gates frame-value emission: only the
// first value-change block in the file contributes frame events (later
// blocks' frames are consistency data, not new events).
func DecodeBlock(payload []byte, widths WidthTable, isFirstBlock bool) ([]Event, error) {
	if len(payload) < blockPrefixLen {
		return nil, errs.ErrCorruptBlock
	}

	e := endian.GetBigEndianEngine()
	startTime := e.Uint64(payload[0:8])

	offset := blockPrefixLen

	fr, offset, err := parseFrame(payload, offset)
	if err != nil {
		return nil, err
	}

	wavesLen, offset, err := leb128.ReadUvarint(payload, offset)
	if err != nil {
		return nil, err
	}

	if wavesLen > uint64(len(payload)-offset) {
		return nil, errs.ErrUnexpectedEOF
	}

	waveformRegion := payload[offset : offset+int(wavesLen)]
	offset += int(wavesLen)

	chain, offset, err := parseChainTable(payload, offset, fr.maxHandle, len(waveformRegion))
	if err != nil {
		return nil, err
	}

	times, _, err := parseTimeTable(payload, offset)
	if err != nil {
		return nil, err
	}

	var events []Event

	if isFirstBlock {
		events, err = appendFrameEvents(events, fr, widths, startTime)
		if err != nil {
			return nil, err
		}
	}

	events, err = appendWaveformEvents(events, fr.maxHandle, chain, waveformRegion, times, widths)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}

		return events[i].Handle < events[j].Handle
	})

	return events, nil
}

func appendFrameEvents(events []Event, fr frame, widths WidthTable, startTime uint64) ([]Event, error) {
	for h := uint64(1); h <= fr.maxHandle; h++ {
		val, ok, err := fr.valueFor(h, widths)
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		if val.Kind == KindString && isUnknownFrame(val.Str) {
			continue
		}

		events = append(events, Event{Time: startTime, Handle: h, Value: val})
	}

	return events, nil
}

func appendWaveformEvents(events []Event, maxHandle uint64, chain chainTable, waveformRegion []byte, times []uint64, widths WidthTable) ([]Event, error) {
	for h := uint64(1); h <= maxHandle; h++ {
		start, end, ok := chain.recordBounds(h)
		if !ok {
			continue
		}

		if start < 0 || end < start || int(end) > len(waveformRegion) {
			return nil, errs.ErrCorruptBlock
		}

		w := widths.Width(h)

		rawEvents, err := decodeRecord(waveformRegion[start:end], w)
		if err != nil {
			return nil, err
		}

		for _, re := range rawEvents {
			if re.timeIdx < 0 || re.timeIdx >= int64(len(times)) {
				return nil, errs.ErrCorruptBlock
			}

			val, err := decodeValue(re, w)
			if err != nil {
				return nil, err
			}

			events = append(events, Event{Time: times[re.timeIdx], Handle: h, Value: val})
		}
	}

	return events, nil
}
