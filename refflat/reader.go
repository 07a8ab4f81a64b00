package refflat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"

	"github.com/bow/gfxtools"
)

// RecordReader decodes refFlat rows one at a time from an underlying
// stream. It is a finite, non-restartable pull sequence:
// callers that need another pass must construct a new RecordReader over a
// freshly opened stream.
type RecordReader struct {
	scanner *tsv.Reader
}

// NewRecordReader wraps r, buffering reads, and returns a RecordReader.
func NewRecordReader(r io.Reader) *RecordReader {
	scanner := tsv.NewReader(bufio.NewReaderSize(r, 64<<10))
	scanner.Comment = '#'
	return &RecordReader{scanner: scanner}
}

// Next decodes and returns the next record, or io.EOF once the stream is
// exhausted.
func (rr *RecordReader) Next() (*Record, error) {
	var raw rawRow
	if err := rr.scanner.Read(&raw); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: %v", gfxtools.ErrRefFlatFormat, err)
	}
	return recordFromRaw(raw)
}

// TranscriptReader lifts each refFlat record into a Transcript via a
// TBuilder. refFlat's cds coordinates always include the stop codon.
type TranscriptReader struct {
	records *RecordReader
}

// NewTranscriptReader wraps r and returns a TranscriptReader.
func NewTranscriptReader(r io.Reader) *TranscriptReader {
	return &TranscriptReader{records: NewRecordReader(r)}
}

// Next decodes the next row and builds the Transcript it describes, or
// returns io.EOF once the stream is exhausted.
func (tr *TranscriptReader) Next() (*gfxtools.Transcript, error) {
	rec, err := tr.records.Next()
	if err != nil {
		return nil, err
	}
	return transcriptFromRecord(rec)
}

func transcriptFromRecord(rec *Record) (*gfxtools.Transcript, error) {
	tb := gfxtools.NewTBuilder(rec.SeqName, rec.TxStart, rec.TxEnd).
		StrandChar(rec.StrandChar).
		ID(rec.TranscriptID).
		GeneID(rec.GeneID).
		CodingInclStop(true)

	if rec.HasCDS() {
		cc := gfxtools.Coord{Start: rec.CdsStart, End: rec.CdsEnd}
		tb.Coords(rec.ExonCoords(), &cc)
	} else {
		tb.Coords(rec.ExonCoords(), nil)
	}
	return tb.Build()
}

// GeneReader groups consecutive refFlat rows sharing the same gene_id into
// a Gene. Grouping is adjacency-based, not global: rows for the same gene
// must be contiguous in the input.
type GeneReader struct {
	records *RecordReader
	pending *Record
	done    bool
	seen    map[string]bool
}

// NewGeneReader wraps r and returns a GeneReader.
func NewGeneReader(r io.Reader) *GeneReader {
	return &GeneReader{records: NewRecordReader(r), seen: make(map[string]bool)}
}

// Next accumulates and builds the next contiguous gene group, or returns
// io.EOF once the stream is exhausted.
func (gr *GeneReader) Next() (*gfxtools.Gene, error) {
	if gr.done {
		return nil, io.EOF
	}

	first := gr.pending
	gr.pending = nil
	if first == nil {
		rec, err := gr.records.Next()
		if err != nil {
			gr.done = true
			return nil, err
		}
		first = rec
	}
	if gr.seen[first.GeneID] {
		log.Printf("refflat: gene_id %q reappears non-contiguously, treating as a separate gene group", first.GeneID)
	}
	gr.seen[first.GeneID] = true

	group := []*Record{first}
	for {
		rec, err := gr.records.Next()
		if err != nil {
			gr.done = true
			if err != io.EOF {
				return nil, err
			}
			break
		}
		if rec.GeneID != first.GeneID {
			gr.pending = rec
			break
		}
		group = append(group, rec)
	}

	return geneFromRecordGroup(group)
}

func geneFromRecordGroup(group []*Record) (*gfxtools.Gene, error) {
	geneStart, geneEnd := group[0].TxStart, group[0].TxEnd
	for _, rec := range group[1:] {
		if rec.TxStart < geneStart {
			geneStart = rec.TxStart
		}
		if rec.TxEnd > geneEnd {
			geneEnd = rec.TxEnd
		}
	}

	gb := gfxtools.NewGBuilder(group[0].SeqName, geneStart, geneEnd).
		StrandChar(group[0].StrandChar).
		ID(group[0].GeneID).
		TranscriptCodingInclStop(true)

	for _, rec := range group {
		rc := gfxtools.RawTranscriptCoords{
			TranscriptCoord: gfxtools.Coord{Start: rec.TxStart, End: rec.TxEnd},
			ExonCoords:      rec.ExonCoords(),
		}
		if rec.HasCDS() {
			cc := gfxtools.Coord{Start: rec.CdsStart, End: rec.CdsEnd}
			rc.CodingCoord = &cc
		}
		gb.AddTranscriptCoords(rec.TranscriptID, rc)
	}

	return gb.Build()
}
