package refflat

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWriterRoundTripNoCDS(t *testing.T) {
	for _, name := range []string{"single_row_no_cds.refflat", "mult_rows_no_cds.refflat"} {
		t.Run(name, func(t *testing.T) {
			want, err := os.ReadFile("testdata/" + name)
			require.NoError(t, err)

			f, err := os.Open("testdata/" + name)
			require.NoError(t, err)
			defer f.Close()

			var buf bytes.Buffer
			rw := NewRecordWriter(&buf)
			rr := NewRecordReader(f)
			for {
				rec, err := rr.Next()
				if err != nil {
					break
				}
				require.NoError(t, rw.WriteRecord(rec))
			}
			require.NoError(t, rw.Flush())

			assert.Equal(t, string(want), buf.String())
		})
	}
}

func TestTranscriptRoundTripNoCDS(t *testing.T) {
	f, err := os.Open("testdata/single_row_no_cds.refflat")
	require.NoError(t, err)
	defer f.Close()

	want, err := os.ReadFile("testdata/single_row_no_cds.refflat")
	require.NoError(t, err)

	tr := NewTranscriptReader(f)
	tx, err := tr.Next()
	require.NoError(t, err)

	var buf bytes.Buffer
	rw := NewRecordWriter(&buf)
	require.NoError(t, rw.WriteTranscript(tx))
	require.NoError(t, rw.Flush())

	assert.Equal(t, string(want), buf.String())
}

func TestGeneRoundTripWithCDS(t *testing.T) {
	f, err := os.Open("testdata/mult_rows_mult_genes_with_cds.refflat")
	require.NoError(t, err)
	defer f.Close()

	want, err := os.ReadFile("testdata/mult_rows_mult_genes_with_cds.refflat")
	require.NoError(t, err)

	gr := NewGeneReader(f)
	var buf bytes.Buffer
	rw := NewRecordWriter(&buf)
	for {
		gx, err := gr.Next()
		if err != nil {
			break
		}
		require.NoError(t, rw.WriteGene(gx))
	}
	require.NoError(t, rw.Flush())

	assert.Equal(t, string(want), buf.String())
}
