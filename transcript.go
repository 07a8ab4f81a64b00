package gfxtools

// Transcript is an ordered collection of exons sharing a sequence name and
// strand, optionally carrying a coding region inferred across those exons.
type Transcript struct {
	seqName    string
	interval   Interval
	strand     Strand
	id         *string
	geneID     *string
	attributes *Attributes
	exons      []*Exon
}

// SeqName returns the name of the sequence the transcript lies on.
func (t *Transcript) SeqName() string { return t.seqName }

// Interval returns the transcript's genomic interval.
func (t *Transcript) Interval() Interval { return t.interval }

// Start returns the 5'-most (genome-wise) coordinate of the transcript.
func (t *Transcript) Start() uint64 { return t.interval.Start() }

// End returns the 3'-most (genome-wise) coordinate of the transcript.
func (t *Transcript) End() uint64 { return t.interval.End() }

// Strand returns the transcript's strand.
func (t *Transcript) Strand() Strand { return t.strand }

// ID returns the transcript's identifier, if any.
func (t *Transcript) ID() (string, bool) {
	if t.id == nil {
		return "", false
	}
	return *t.id, true
}

// SetID sets the transcript's identifier, propagating the change to every
// contained exon.
func (t *Transcript) SetID(id *string) {
	t.id = id
	for _, ex := range t.exons {
		ex.SetTranscriptID(id)
	}
}

// GeneID returns the transcript's gene identifier, if any.
func (t *Transcript) GeneID() (string, bool) {
	if t.geneID == nil {
		return "", false
	}
	return *t.geneID, true
}

// SetGeneID sets the transcript's gene identifier, propagating the change
// to every contained exon.
func (t *Transcript) SetGeneID(id *string) {
	t.geneID = id
	for _, ex := range t.exons {
		ex.SetGeneID(id)
	}
}

// Attributes returns the transcript's free-form attribute multimap.
func (t *Transcript) Attributes() *Attributes { return t.attributes }

// Exons returns the transcript's ordered exons.
func (t *Transcript) Exons() []*Exon { return t.exons }

// CodingCoord returns the genome-wise extremes of the transcript's coding
// region, derived from the sub-features already stored on its exons. It
// returns false if the transcript has no coding features, or if strand is
// Unknown and inclStop is false.
func (t *Transcript) CodingCoord(inclStop bool) (Coord, bool) {
	start, ok := t.codingStartCoord(inclStop)
	if !ok {
		return Coord{}, false
	}
	end, ok := t.codingEndCoord(inclStop)
	if !ok {
		return Coord{}, false
	}
	return Coord{Start: start, End: end}, true
}

func (t *Transcript) codingStartCoord(inclStop bool) (uint64, bool) {
	switch t.strand {
	case StrandForward:
		for _, ex := range t.exons {
			for _, fx := range ex.Features() {
				if fx.Kind().Tag() == ExonStartCodon {
					return fx.Start(), true
				}
			}
		}
		return 0, false
	case StrandReverse:
		var codonRem uint64
		if !inclStop {
			codonRem = 3
		}
		for _, ex := range t.exons {
			for _, fx := range ex.Features() {
				if fx.Kind().Tag() == ExonStopCodon {
					if inclStop {
						return fx.Start(), true
					}
					codonRem -= fx.Span()
					if codonRem == 0 {
						return fx.End(), true
					}
				}
			}
		}
		return 0, false
	default:
		if !inclStop {
			return 0, false
		}
		for _, ex := range t.exons {
			for _, fx := range ex.Features() {
				if fx.Kind().Tag() == ExonCDS {
					return fx.Start(), true
				}
			}
		}
		return 0, false
	}
}

func (t *Transcript) codingEndCoord(inclStop bool) (uint64, bool) {
	switch t.strand {
	case StrandForward:
		var codonRem uint64
		if !inclStop {
			codonRem = 3
		}
		for i := len(t.exons) - 1; i >= 0; i-- {
			fxs := t.exons[i].Features()
			for j := len(fxs) - 1; j >= 0; j-- {
				fx := fxs[j]
				if fx.Kind().Tag() == ExonStopCodon {
					if inclStop {
						return fx.End(), true
					}
					codonRem -= fx.Span()
					if codonRem == 0 {
						return fx.Start(), true
					}
				}
			}
		}
		return 0, false
	case StrandReverse:
		for i := len(t.exons) - 1; i >= 0; i-- {
			fxs := t.exons[i].Features()
			for j := len(fxs) - 1; j >= 0; j-- {
				fx := fxs[j]
				if fx.Kind().Tag() == ExonStartCodon {
					return fx.End(), true
				}
			}
		}
		return 0, false
	default:
		if !inclStop {
			return 0, false
		}
		for i := len(t.exons) - 1; i >= 0; i-- {
			fxs := t.exons[i].Features()
			for j := len(fxs) - 1; j >= 0; j-- {
				fx := fxs[j]
				if fx.Kind().Tag() == ExonCDS {
					return fx.End(), true
				}
			}
		}
		return 0, false
	}
}
