package gfxtools

import (
	"errors"
	"testing"
)

func TestGBuilderMultiTranscript(t *testing.T) {
	gb := NewGBuilder("chr1", 100, 1000).
		StrandChar('+').
		ID("geneA").
		AddTranscriptCoords("tx1", RawTranscriptCoords{
			TranscriptCoord: Coord{Start: 100, End: 400},
			ExonCoords:      []Coord{{Start: 100, End: 400}},
		}).
		AddTranscriptCoords("tx2", RawTranscriptCoords{
			TranscriptCoord: Coord{Start: 600, End: 1000},
			ExonCoords:      []Coord{{Start: 600, End: 1000}},
		})

	gene, err := gb.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ids := gene.TranscriptIDs(); len(ids) != 2 || ids[0] != "tx1" || ids[1] != "tx2" {
		t.Fatalf("got transcript ids %v, want [tx1 tx2] in insertion order", ids)
	}
	if _, ok := gene.Transcript("tx1"); !ok {
		t.Fatal("expected tx1 to be registered")
	}
}

func TestGBuilderTranscriptNotFullyEnveloped(t *testing.T) {
	gb := NewGBuilder("chr1", 100, 500).
		StrandChar('+').
		AddTranscriptCoords("tx1", RawTranscriptCoords{
			TranscriptCoord: Coord{Start: 100, End: 600},
			ExonCoords:      []Coord{{Start: 100, End: 600}},
		})
	_, err := gb.Build()
	if !errors.Is(err, ErrTranscriptNotFullyEnveloped) {
		t.Fatalf("got %v, want ErrTranscriptNotFullyEnveloped", err)
	}
}

func TestGeneSetIDPropagatesToTranscripts(t *testing.T) {
	gene, err := NewGBuilder("chr1", 100, 400).
		StrandChar('+').
		AddTranscriptCoords("tx1", RawTranscriptCoords{
			TranscriptCoord: Coord{Start: 100, End: 400},
			ExonCoords:      []Coord{{Start: 100, End: 400}},
		}).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	id := "geneB"
	gene.SetID(&id)
	tx, _ := gene.Transcript("tx1")
	got, ok := tx.GeneID()
	if !ok || got != id {
		t.Fatalf("got gene id %q, ok=%v, want %q", got, ok, id)
	}
}
