package refflat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bow/gfxtools"
)

// RecordWriter emits refFlat rows to an underlying stream.
//
// github.com/grailbio/base/tsv exposes only a Reader, not a writer type
// (see DESIGN.md), so rows are formatted and joined by hand over a
// buffered stdlib writer, matching the 11-field tab-separated layout and
// trailing commas of the refFlat format.
type RecordWriter struct {
	w *bufio.Writer
}

// NewRecordWriter wraps w in a buffered RecordWriter.
func NewRecordWriter(w io.Writer) *RecordWriter {
	return &RecordWriter{w: bufio.NewWriter(w)}
}

// WriteRecord writes rec as one tab-separated row terminated by a newline.
func (rw *RecordWriter) WriteRecord(rec *Record) error {
	_, err := fmt.Fprintf(rw.w, "%s\t%s\t%s\t%c\t%d\t%d\t%d\t%d\t%d\t%s\t%s\n",
		rec.GeneID, rec.TranscriptID, rec.SeqName, rec.StrandChar,
		rec.TxStart, rec.TxEnd, rec.CdsStart, rec.CdsEnd,
		len(rec.ExonStarts), formatCommaInts(rec.ExonStarts), formatCommaInts(rec.ExonEnds))
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (rw *RecordWriter) Flush() error {
	return rw.w.Flush()
}

// WriteTranscript writes t as a single refFlat row, using
// coding_coord(incl_stop=true) to recover the CDS columns.
func (rw *RecordWriter) WriteTranscript(t *gfxtools.Transcript) error {
	rec, err := recordFromTranscript(t)
	if err != nil {
		return err
	}
	return rw.WriteRecord(rec)
}

// WriteGene writes every transcript of g as one refFlat row each, in the
// gene's transcript insertion order.
func (rw *RecordWriter) WriteGene(g *gfxtools.Gene) error {
	for _, t := range g.Transcripts() {
		if err := rw.WriteTranscript(t); err != nil {
			return err
		}
	}
	return nil
}

func recordFromTranscript(t *gfxtools.Transcript) (*Record, error) {
	geneID, _ := t.GeneID()
	txID, _ := t.ID()

	exons := t.Exons()
	starts := make([]uint64, len(exons))
	ends := make([]uint64, len(exons))
	for i, ex := range exons {
		starts[i] = ex.Start()
		ends[i] = ex.End()
	}

	cdsStart, cdsEnd := t.End(), t.End()
	if cc, ok := t.CodingCoord(true); ok {
		cdsStart, cdsEnd = cc.Start, cc.End
	}

	return &Record{
		GeneID:       geneID,
		TranscriptID: txID,
		SeqName:      t.SeqName(),
		StrandChar:   []byte(t.Strand().String())[0],
		TxStart:      t.Start(),
		TxEnd:        t.End(),
		CdsStart:     cdsStart,
		CdsEnd:       cdsEnd,
		ExonStarts:   starts,
		ExonEnds:     ends,
	}, nil
}
