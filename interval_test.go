package gfxtools

import (
	"errors"
	"testing"
)

func TestNewInterval(t *testing.T) {
	cases := []struct {
		name       string
		start, end uint64
		wantErr    error
	}{
		{"valid", 10, 20, nil},
		{"equal bounds", 10, 10, ErrInvalidInterval},
		{"inverted bounds", 20, 10, ErrInvalidInterval},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := NewInterval(tt.start, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got err %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if iv.Start() != tt.start || iv.End() != tt.end {
					t.Fatalf("got [%d,%d), want [%d,%d)", iv.Start(), iv.End(), tt.start, tt.end)
				}
				if iv.Span() != tt.end-tt.start {
					t.Fatalf("got span %d, want %d", iv.Span(), tt.end-tt.start)
				}
			}
		})
	}
}

func TestIntervalContainsEnvelops(t *testing.T) {
	iv, err := NewInterval(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	if !iv.Contains(10) || !iv.Contains(19) {
		t.Fatal("expected bounds to be contained")
	}
	if iv.Contains(20) {
		t.Fatal("end bound must not be contained")
	}
	inner, _ := NewInterval(12, 15)
	if !iv.Envelops(inner) {
		t.Fatal("expected inner interval to be enveloped")
	}
	outer, _ := NewInterval(5, 25)
	if iv.Envelops(outer) {
		t.Fatal("did not expect outer interval to be enveloped")
	}
}
