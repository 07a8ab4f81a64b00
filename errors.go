package gfxtools

import (
	"errors"
	"fmt"
)

// Sentinel errors for the validation and inference failure conditions that
// carry no additional context. Errors that need a transcript id are
// represented by *IDError below, wrapping one of these sentinels so callers
// can still match on it with errors.Is.
var (
	// ErrInvalidInterval occurs when start >= end on any interval.
	ErrInvalidInterval = errors.New("gfxtools: interval start is not smaller than its end")
	// ErrInvalidStrandChar occurs when an unrecognized strand character is used.
	ErrInvalidStrandChar = errors.New("gfxtools: invalid strand character")
	// ErrConflictingStrand occurs when a strand value and strand char disagree.
	ErrConflictingStrand = errors.New("gfxtools: conflicting strand inputs")
	// ErrUnspecifiedStrand occurs when neither a strand value nor a strand
	// char was supplied to a builder.
	ErrUnspecifiedStrand = errors.New("gfxtools: strand not specified")
	// ErrInvalidExonInterval occurs when an exon coordinate has start >= end.
	ErrInvalidExonInterval = errors.New("gfxtools: exon has non-increasing start/end coordinate")
	// ErrInvalidCodingInterval occurs when the (normalized) coding interval
	// has start >= end.
	ErrInvalidCodingInterval = errors.New("gfxtools: coding region has non-increasing start/end coordinate")
	// ErrUnspecifiedExons occurs when a coding coordinate is supplied without
	// exon coordinates.
	ErrUnspecifiedExons = errors.New("gfxtools: transcript defined without exons")
	// ErrUnmatchedExons occurs when the exon bounds do not match the
	// transcript bounds.
	ErrUnmatchedExons = errors.New("gfxtools: first and/or last exon coordinate does not match transcript bounds")
	// ErrCodingTooLarge occurs when there is no room left for the stop codon.
	ErrCodingTooLarge = errors.New("gfxtools: coding region leaves no room for the stop codon")
	// ErrCodingTooSmall occurs when the coding region cannot hold a start codon.
	ErrCodingTooSmall = errors.New("gfxtools: coding region leaves no room for the start codon")
	// ErrCodingNotFullyEnveloped occurs when the coding coordinate extends
	// past the first/last exon bound.
	ErrCodingNotFullyEnveloped = errors.New("gfxtools: coding region not fully enveloped by exons")
	// ErrCodingInIntron occurs when a coding endpoint falls inside an intron.
	ErrCodingInIntron = errors.New("gfxtools: coding start and/or end lies in an intron")
	// ErrTranscriptNotFullyEnveloped occurs when a transcript extends past
	// its gene.
	ErrTranscriptNotFullyEnveloped = errors.New("gfxtools: transcript coordinate not fully enveloped by gene coordinate")
	// ErrRefFlatFormat occurs when a refFlat row is malformed.
	ErrRefFlatFormat = errors.New("gfxtools: malformed refFlat row")
)

// IDError wraps one of the sentinel errors above with the identifier of the
// transcript (or gene) under construction when the error occurred.
type IDError struct {
	Err error
	ID  string
}

// Error implements the error interface.
func (e *IDError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s, id: <unspecified>", e.Err)
	}
	return fmt.Sprintf("%s, id: %s", e.Err, e.ID)
}

// Unwrap allows errors.Is/errors.As to see through to the sentinel error.
func (e *IDError) Unwrap() error { return e.Err }

// withID wraps err with the given identifier, unless err is nil.
func withID(err error, id string) error {
	if err == nil {
		return nil
	}
	return &IDError{Err: err, ID: id}
}
