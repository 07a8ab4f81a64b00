package refflat

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestdata(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestRecordReaderSingleRowNoCDS(t *testing.T) {
	f := openTestdata(t, "single_row_no_cds.refflat")
	rr := NewRecordReader(f)

	rec, err := rr.Next()
	require.NoError(t, err)
	assert.Equal(t, "DDX11L1", rec.GeneID)
	assert.Equal(t, "NR_046018", rec.TranscriptID)
	assert.False(t, rec.HasCDS())

	_, err = rr.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestTranscriptReaderSingleRowNoCDS(t *testing.T) {
	f := openTestdata(t, "single_row_no_cds.refflat")
	tr := NewTranscriptReader(f)

	tx, err := tr.Next()
	require.NoError(t, err)
	id, ok := tx.ID()
	require.True(t, ok)
	assert.Equal(t, "NR_046018", id)
	assert.Len(t, tx.Exons(), 3)

	_, err = tr.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestGeneReaderMultRowsNoCDS(t *testing.T) {
	f := openTestdata(t, "mult_rows_no_cds.refflat")
	gr := NewGeneReader(f)

	gx1, err := gr.Next()
	require.NoError(t, err)
	id1, _ := gx1.ID()
	assert.Equal(t, "DDX11L1", id1)

	gx2, err := gr.Next()
	require.NoError(t, err)
	id2, _ := gx2.ID()
	assert.Equal(t, "MIR570", id2)

	_, err = gr.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestGeneReaderMultRowsMultGenesWithCDS(t *testing.T) {
	f := openTestdata(t, "mult_rows_mult_genes_with_cds.refflat")
	gr := NewGeneReader(f)

	gx1, err := gr.Next()
	require.NoError(t, err)
	id1, _ := gx1.ID()
	assert.Equal(t, "TNFRSF14", id1)
	assert.Len(t, gx1.TranscriptIDs(), 2)

	gx2, err := gr.Next()
	require.NoError(t, err)
	id2, _ := gx2.ID()
	assert.Equal(t, "SMIM12", id2)
	assert.Len(t, gx2.TranscriptIDs(), 3)

	_, err = gr.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestTranscriptReaderMultRowsMultGenesWithCDS(t *testing.T) {
	f := openTestdata(t, "mult_rows_mult_genes_with_cds.refflat")
	tr := NewTranscriptReader(f)

	first, err := tr.Next()
	require.NoError(t, err)
	id, _ := first.ID()
	assert.Equal(t, "NM_001297605", id)

	for i := 0; i < 3; i++ {
		_, err := tr.Next()
		require.NoError(t, err)
	}

	last, err := tr.Next()
	require.NoError(t, err)
	lastID, _ := last.ID()
	assert.Equal(t, "NM_138428", lastID)

	_, err = tr.Next()
	assert.ErrorIs(t, err, io.EOF)
}
