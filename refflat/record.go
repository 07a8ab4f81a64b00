// Package refflat implements a codec for the refFlat tabular annotation
// format: 11 tab-separated fields per transcript, lifted to and from the
// gfxtools in-memory model.
package refflat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bow/gfxtools"
)

// rawRow mirrors the 11-column refFlat layout positionally for decoding
// with github.com/grailbio/base/tsv; exon_starts/exon_ends stay as raw
// comma-terminated strings since their element count is data-dependent.
type rawRow struct {
	GeneID     string
	TxID       string
	SeqName    string
	StrandChar string
	TxStart    uint64
	TxEnd      uint64
	CdsStart   uint64
	CdsEnd     uint64
	ExonCount  uint64
	ExonStarts string
	ExonEnds   string
}

// Record is a single decoded refFlat row.
type Record struct {
	GeneID       string
	TranscriptID string
	SeqName      string
	StrandChar   byte
	TxStart      uint64
	TxEnd        uint64
	CdsStart     uint64
	CdsEnd       uint64
	ExonStarts   []uint64
	ExonEnds     []uint64
}

// HasCDS reports whether the record carries a coding region, per the
// refFlat convention that cds_start == cds_end == tx_end means "no CDS".
func (r *Record) HasCDS() bool {
	return !(r.CdsStart == r.CdsEnd && r.CdsEnd == r.TxEnd)
}

// ExonCoords returns the record's exon coordinates as gfxtools.Coord
// values.
func (r *Record) ExonCoords() []gfxtools.Coord {
	coords := make([]gfxtools.Coord, len(r.ExonStarts))
	for i := range r.ExonStarts {
		coords[i] = gfxtools.Coord{Start: r.ExonStarts[i], End: r.ExonEnds[i]}
	}
	return coords
}

// recordFromRaw validates and converts a decoded rawRow into a Record.
func recordFromRaw(raw rawRow) (*Record, error) {
	if len(raw.StrandChar) != 1 {
		return nil, fmt.Errorf("%w: strand field must be a single character, got %q",
			gfxtools.ErrRefFlatFormat, raw.StrandChar)
	}

	starts, err := parseCommaInts(raw.ExonStarts, raw.ExonCount)
	if err != nil {
		return nil, fmt.Errorf("%w: exon starts: %v", gfxtools.ErrRefFlatFormat, err)
	}
	ends, err := parseCommaInts(raw.ExonEnds, raw.ExonCount)
	if err != nil {
		return nil, fmt.Errorf("%w: exon ends: %v", gfxtools.ErrRefFlatFormat, err)
	}
	if len(starts) != len(ends) {
		return nil, fmt.Errorf("%w: exon start/end count mismatch (%d vs %d)",
			gfxtools.ErrRefFlatFormat, len(starts), len(ends))
	}

	return &Record{
		GeneID:       raw.GeneID,
		TranscriptID: raw.TxID,
		SeqName:      raw.SeqName,
		StrandChar:   raw.StrandChar[0],
		TxStart:      raw.TxStart,
		TxEnd:        raw.TxEnd,
		CdsStart:     raw.CdsStart,
		CdsEnd:       raw.CdsEnd,
		ExonStarts:   starts,
		ExonEnds:     ends,
	}, nil
}

// parseCommaInts parses a trailing-comma-terminated list of unsigned
// integers (the refFlat exon_starts/exon_ends encoding) and checks it holds
// exactly want elements.
func parseCommaInts(field string, want uint64) ([]uint64, error) {
	trimmed := strings.TrimSuffix(field, ",")
	if trimmed == "" {
		if want == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("expected %d value(s), found none", want)
	}
	parts := strings.Split(trimmed, ",")
	if uint64(len(parts)) != want {
		return nil, fmt.Errorf("expected %d value(s), found %d", want, len(parts))
	}
	out := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %v", p, err)
		}
		out[i] = v
	}
	return out, nil
}

// formatCommaInts renders vs as a trailing-comma-terminated list, matching
// the refFlat exon_starts/exon_ends encoding.
func formatCommaInts(vs []uint64) string {
	var sb strings.Builder
	for _, v := range vs {
		sb.WriteString(strconv.FormatUint(v, 10))
		sb.WriteByte(',')
	}
	return sb.String()
}
