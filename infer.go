package gfxtools

import "sort"

// resolveExonsInput picks the exon-construction path for a transcript
// builder: pre-made exons take precedence, then coordinate-based inference,
// then the empty case.
func resolveExonsInput(
	seqName string,
	interval Interval,
	strand Strand,
	transcriptID, geneID *string,
	exons []*Exon,
	exonCoords []Coord,
	codingCoord *Coord,
	codingInclStop bool,
) ([]*Exon, error) {
	switch {
	case exons != nil:
		return exons, nil
	case exonCoords == nil && codingCoord == nil:
		return nil, nil
	case exonCoords == nil:
		return nil, withID(ErrUnspecifiedExons, derefOr(transcriptID, ""))
	default:
		return inferExons(seqName, interval, strand, transcriptID, geneID, exonCoords, codingCoord, codingInclStop)
	}
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// inferExons validates raw exon/coding coordinates and dispatches to the
// feature-synthesis walk.
func inferExons(
	seqName string,
	transcriptInterval Interval,
	strand Strand,
	transcriptID, geneID *string,
	exonCoords []Coord,
	codingCoord *Coord,
	codingInclStop bool,
) ([]*Exon, error) {
	tid := derefOr(transcriptID, "")

	if len(exonCoords) == 0 {
		return nil, withID(ErrUnspecifiedExons, tid)
	}

	coords := make([]Coord, len(exonCoords))
	copy(coords, exonCoords)
	for _, c := range coords {
		if c.Start >= c.End {
			return nil, withID(ErrInvalidExonInterval, tid)
		}
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Start != coords[j].Start {
			return coords[i].Start < coords[j].Start
		}
		return coords[i].End < coords[j].End
	})

	adjCoding := codingCoord
	if codingCoord != nil && codingInclStop {
		adj := adjustCodingCoord(codingCoord.Start, codingCoord.End, strand, coords)
		adjCoding = &adj
	}

	exonStart, exonEnd := coords[0].Start, coords[len(coords)-1].End
	if exonStart != transcriptInterval.Start() || exonEnd != transcriptInterval.End() {
		return nil, withID(ErrUnmatchedExons, tid)
	}

	if adjCoding == nil {
		out := make([]*Exon, 0, len(coords))
		for _, c := range coords {
			iv, err := NewInterval(c.Start, c.End)
			if err != nil {
				return nil, withID(ErrInvalidExonInterval, tid)
			}
			out = append(out, &Exon{
				seqName:      seqName,
				interval:     iv,
				strand:       strand,
				transcriptID: transcriptID,
				geneID:       geneID,
				attributes:   NewAttributes(),
			})
		}
		return out, nil
	}

	codingR := *adjCoding
	if codingR.Start >= codingR.End {
		return nil, withID(ErrInvalidCodingInterval, tid)
	}
	if codingR.Start < exonStart || codingR.End > exonEnd {
		return nil, withID(ErrCodingNotFullyEnveloped, tid)
	}
	var startInExon, endInExon bool
	for _, c := range coords {
		if c.Start <= codingR.Start && codingR.Start <= c.End {
			startInExon = true
		}
		if c.Start <= codingR.End && codingR.End <= c.End {
			endInExon = true
		}
	}
	if !startInExon || !endInExon {
		return nil, withID(ErrCodingInIntron, tid)
	}

	var stopCodonOK bool
	switch strand {
	case StrandForward:
		stopCodonOK = codingR.End+3 <= exonEnd
	case StrandReverse:
		stopCodonOK = codingR.Start >= exonStart+3
	default:
		stopCodonOK = codingR.Start >= exonStart+3 && codingR.End+3 <= exonEnd
	}
	if !stopCodonOK {
		return nil, withID(ErrCodingTooLarge, tid)
	}

	return inferExonFeatures(coords, codingR, seqName, strand, transcriptID, geneID)
}

// adjustCodingCoord strips the three exonic bases of the stop codon from an
// "includes-stop" coding coordinate, walking exons in transcription order.
// Unknown strand leaves the coordinate unchanged.
func adjustCodingCoord(start, end uint64, strand Strand, exonCoords []Coord) Coord {
	codonRem := uint64(3)
	switch strand {
	case StrandForward:
		for i := len(exonCoords) - 1; i >= 0; i-- {
			exonStart, exonEnd := exonCoords[i].Start, exonCoords[i].End
			if exonStart <= end && end <= exonEnd {
				adjEnd := exonStart
				if end > codonRem && end-codonRem > exonStart {
					adjEnd = end - codonRem
				}
				codonRem -= end - adjEnd
				end = adjEnd
				if codonRem == 0 {
					break
				}
				if i > 0 {
					end = exonCoords[i-1].End
				}
			}
		}
	case StrandReverse:
		for i, c := range exonCoords {
			exonStart, exonEnd := c.Start, c.End
			if exonStart <= start && start <= exonEnd {
				adjStart := exonEnd
				if start+codonRem < exonEnd {
					adjStart = start + codonRem
				}
				codonRem -= adjStart - start
				start = adjStart
				if codonRem == 0 {
					break
				}
				if i+1 < len(exonCoords) {
					start = exonCoords[i+1].Start
				}
			}
		}
	}
	return Coord{Start: start, End: end}
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// inferExonFeatures walks exon coordinates in ascending genomic order,
// synthesizing UTR/codon/CDS sub-features relative to the (already
// normalized) coding region. This is a direct structural transliteration of
// the reference exon-feature synthesis table.
func inferExonFeatures(
	exonCoords []Coord,
	codingR Coord,
	seqName string,
	strand Strand,
	transcriptID, geneID *string,
) ([]*Exon, error) {
	tid := derefOr(transcriptID, "")

	var utr1, utr2 ExonFeatureKind
	switch strand {
	case StrandForward:
		utr1, utr2 = NewUTR5Kind(), NewUTR3Kind()
	case StrandReverse:
		utr1, utr2 = NewUTR3Kind(), NewUTR5Kind()
	default:
		utr1, utr2 = NewUTRKind(), NewUTRKind()
	}

	mkExon := func(start, end uint64, features []ExonFeature) *Exon {
		iv, _ := NewInterval(start, end)
		return &Exon{
			seqName:      seqName,
			interval:     iv,
			strand:       strand,
			transcriptID: transcriptID,
			geneID:       geneID,
			attributes:   NewAttributes(),
			features:     features,
		}
	}
	mkFeat := func(start, end uint64, kind ExonFeatureKind) ExonFeature {
		iv, _ := NewInterval(start, end)
		return NewFeature(iv, kind)
	}

	exons := make([]*Exon, 0, len(exonCoords)*2+4)
	codon1Rem, codon2Rem := uint64(3), uint64(3)

	for _, c := range exonCoords {
		start, end := c.Start, c.End

		switch {
		case start < codingR.Start:
			var feats []ExonFeature
			var utrEnd uint64
			if strand == StrandReverse {
				utrEnd = minU64(end, subOrZero(codingR.Start, codon1Rem))
			} else {
				utrEnd = minU64(end, codingR.Start)
			}
			if start < utrEnd {
				feats = append(feats, mkFeat(start, utrEnd, utr1))
			}

			switch {
			case end < codingR.Start:
				exons = append(exons, mkExon(start, end, feats))

			case end == codingR.Start:
				if strand == StrandReverse {
					fxStart := maxU64(start, subOrZero(codingR.Start, codon1Rem))
					fx := mkFeat(fxStart, codingR.Start, NewStopCodonKind(nil))
					codon1Rem -= fx.Span()
					feats = append(feats, fx)
					feats, codon1Rem = backtrackAndPush(exons, feats, NewStopCodonKind(nil), codon1Rem, mkFeat)
				}
				exons = append(exons, mkExon(start, end, feats))

			case end > codingR.Start && end < codingR.End:
				switch strand {
				case StrandForward:
					fx := mkFeat(codingR.Start, minU64(end, codingR.Start+3), NewStartCodonKind(nil))
					codon1Rem -= fx.Span()
					feats = append(feats, fx)
				case StrandReverse:
					fxStart := maxU64(start, subOrZero(codingR.Start, codon1Rem))
					fx := mkFeat(fxStart, codingR.Start, NewStopCodonKind(nil))
					codon1Rem -= fx.Span()
					feats = append(feats, fx)
					feats, codon1Rem = backtrackAndPush(exons, feats, NewStopCodonKind(nil), codon1Rem, mkFeat)
				}
				feats = append(feats, mkFeat(codingR.Start, end, NewCDSKind(nil)))
				exons = append(exons, mkExon(start, end, feats))

			case end == codingR.End:
				if codingR.End-codingR.Start < 3 {
					return nil, withID(ErrCodingTooSmall, tid)
				}
				switch strand {
				case StrandForward:
					fx := mkFeat(codingR.Start, codingR.Start+3, NewStartCodonKind(nil))
					codon1Rem -= fx.Span()
					feats = append(feats, fx)
					feats = append(feats, mkFeat(codingR.Start, codingR.End, NewCDSKind(nil)))
				case StrandReverse:
					fxStart := maxU64(subOrZero(codingR.Start, codon1Rem), start)
					fx := mkFeat(fxStart, codingR.Start, NewStopCodonKind(nil))
					codon1Rem -= fx.Span()
					feats = append(feats, fx)
					feats, codon1Rem = backtrackAndPush(exons, feats, NewStopCodonKind(nil), codon1Rem, mkFeat)
					feats = append(feats, mkFeat(codingR.Start, codingR.End, NewCDSKind(nil)))
					fx2 := mkFeat(maxU64(start, subOrZero(codingR.End, codon2Rem)), codingR.End, NewStartCodonKind(nil))
					codon2Rem -= fx2.Span()
					feats = append(feats, fx2)
					feats, codon2Rem = backtrackAndPush(exons, feats, NewStartCodonKind(nil), codon2Rem, mkFeat)
				default:
					feats = append(feats, mkFeat(codingR.Start, codingR.End, NewCDSKind(nil)))
				}
				exons = append(exons, mkExon(start, end, feats))

			case end > codingR.End:
				if codingR.End-codingR.Start < 3 {
					return nil, withID(ErrCodingTooSmall, tid)
				}
				switch strand {
				case StrandForward:
					feats = append(feats, mkFeat(codingR.Start, codingR.Start+3, NewStartCodonKind(nil)))
					codon1Rem -= 3
					feats = append(feats, mkFeat(codingR.Start, codingR.End, NewCDSKind(nil)))
					fx := mkFeat(codingR.End, minU64(end, codingR.End+codon2Rem), NewStopCodonKind(nil))
					codon2Rem -= fx.Span()
					codon2End := fx.End()
					feats = append(feats, fx)
					if codon2End < end {
						feats = append(feats, mkFeat(codon2End, end, utr2))
					}
				case StrandReverse:
					fxStart := maxU64(start, subOrZero(codingR.Start, codon2Rem))
					fx := mkFeat(fxStart, codingR.Start, NewStopCodonKind(nil))
					codon1Rem -= fx.Span()
					feats = append(feats, fx)
					feats, codon1Rem = backtrackAndPush(exons, feats, NewStopCodonKind(nil), codon1Rem, mkFeat)
					feats = append(feats, mkFeat(codingR.Start, codingR.End, NewCDSKind(nil)))
					fx2 := mkFeat(subOrZero(codingR.End, codon2Rem), codingR.End, NewStartCodonKind(nil))
					codon2Rem -= fx2.Span()
					feats = append(feats, fx2)
					feats = append(feats, mkFeat(codingR.End, end, utr2))
				default:
					feats = append(feats, mkFeat(codingR.Start, codingR.End, NewCDSKind(nil)))
					feats = append(feats, mkFeat(codingR.End, end, utr2))
				}
				exons = append(exons, mkExon(start, end, feats))
			}

		case start == codingR.Start:
			var feats []ExonFeature
			switch {
			case end < codingR.End:
				switch strand {
				case StrandForward:
					fx := mkFeat(start, minU64(start+codon1Rem, end), NewStartCodonKind(nil))
					codon1Rem -= fx.Span()
					feats = append(feats, fx)
				case StrandReverse:
					feats, codon1Rem = backtrackAndPush(exons, feats, NewStopCodonKind(nil), codon1Rem, mkFeat)
				}
				feats = append(feats, mkFeat(start, end, NewCDSKind(nil)))
				exons = append(exons, mkExon(start, end, feats))

			case end == codingR.End:
				if codingR.End-codingR.Start < 3 {
					return nil, withID(ErrCodingTooSmall, tid)
				}
				switch strand {
				case StrandForward:
					feats = append(feats, mkFeat(start, start+3, NewStartCodonKind(nil)))
					codon1Rem = 0
					feats = append(feats, mkFeat(start, end, NewCDSKind(nil)))
				case StrandReverse:
					feats, codon1Rem = backtrackAndPush(exons, feats, NewStopCodonKind(nil), codon1Rem, mkFeat)
					feats = append(feats, mkFeat(start, end, NewCDSKind(nil)))
					feats = append(feats, mkFeat(end-3, end, NewStartCodonKind(nil)))
					codon2Rem = 0
				default:
					feats = append(feats, mkFeat(start, end, NewCDSKind(nil)))
				}
				exons = append(exons, mkExon(start, end, feats))

			case end > codingR.End:
				if codingR.End-codingR.Start < 3 {
					return nil, withID(ErrCodingTooSmall, tid)
				}
				switch strand {
				case StrandForward:
					feats = append(feats, mkFeat(start, start+3, NewStartCodonKind(nil)))
					codon1Rem -= 3
					feats = append(feats, mkFeat(start, codingR.End, NewCDSKind(nil)))
					fx := mkFeat(codingR.End, minU64(end, codingR.End+codon2Rem), NewStopCodonKind(nil))
					codon2Rem -= fx.Span()
					codon2End := fx.End()
					feats = append(feats, fx)
					if codon2End < end {
						feats = append(feats, mkFeat(codon2End, end, utr2))
					}
				case StrandReverse:
					feats, codon1Rem = backtrackAndPush(exons, feats, NewStopCodonKind(nil), codon1Rem, mkFeat)
					feats = append(feats, mkFeat(start, codingR.End, NewCDSKind(nil)))
					feats = append(feats, mkFeat(codingR.End-3, codingR.End, NewStartCodonKind(nil)))
					codon2Rem -= 3
					feats = append(feats, mkFeat(codingR.End, end, utr2))
				default:
					feats = append(feats, mkFeat(start, codingR.End, NewCDSKind(nil)))
					feats = append(feats, mkFeat(codingR.End, end, utr2))
				}
				exons = append(exons, mkExon(start, end, feats))
			}

		case start > codingR.Start && start < codingR.End:
			var feats []ExonFeature
			switch {
			case end < codingR.End:
				if strand == StrandForward && codon1Rem > 0 {
					fx := mkFeat(start, minU64(end, start+codon1Rem), NewStartCodonKind(nil))
					codon1Rem -= fx.Span()
					feats = append(feats, fx)
				}
				feats = append(feats, mkFeat(start, end, NewCDSKind(nil)))
				exons = append(exons, mkExon(start, end, feats))

			case end == codingR.End:
				switch strand {
				case StrandForward:
					if codon1Rem > 0 {
						fx := mkFeat(start, minU64(end, start+codon1Rem), NewStartCodonKind(nil))
						codon1Rem -= fx.Span()
						feats = append(feats, fx)
					}
					feats = append(feats, mkFeat(start, end, NewCDSKind(nil)))
				case StrandReverse:
					feats = append(feats, mkFeat(start, end, NewCDSKind(nil)))
					fx := mkFeat(maxU64(start, subOrZero(codingR.End, codon2Rem)), codingR.End, NewStartCodonKind(nil))
					codon2Rem -= fx.Span()
					feats = append(feats, fx)
					feats, codon2Rem = backtrackAndPush(exons, feats, NewStartCodonKind(nil), codon2Rem, mkFeat)
				default:
					feats = append(feats, mkFeat(start, end, NewCDSKind(nil)))
				}
				exons = append(exons, mkExon(start, end, feats))

			case end > codingR.End:
				switch strand {
				case StrandForward:
					if codon1Rem > 0 {
						fx := mkFeat(start, minU64(codingR.End, start+codon1Rem), NewStartCodonKind(nil))
						codon1Rem -= fx.Span()
						feats = append(feats, fx)
					}
					feats = append(feats, mkFeat(start, codingR.End, NewCDSKind(nil)))
					fx := mkFeat(codingR.End, minU64(codingR.End+codon2Rem, end), NewStopCodonKind(nil))
					codon2Rem -= fx.Span()
					codon2End := fx.End()
					feats = append(feats, fx)
					if codon2End < end {
						feats = append(feats, mkFeat(codon2End, end, utr2))
					}
				case StrandReverse:
					feats = append(feats, mkFeat(start, codingR.End, NewCDSKind(nil)))
					fx := mkFeat(maxU64(start, subOrZero(codingR.End, codon2Rem)), codingR.End, NewStartCodonKind(nil))
					codon2Rem -= fx.Span()
					feats = append(feats, fx)
					feats, codon2Rem = backtrackAndPush(exons, feats, NewStartCodonKind(nil), codon2Rem, mkFeat)
					feats = append(feats, mkFeat(codingR.End, end, utr2))
				default:
					feats = append(feats, mkFeat(start, codingR.End, NewCDSKind(nil)))
					feats = append(feats, mkFeat(codingR.End, end, utr2))
				}
				exons = append(exons, mkExon(start, end, feats))
			}

		default: // start >= codingR.End
			var feats []ExonFeature
			switch strand {
			case StrandForward:
				if codon2Rem > 0 {
					fx := mkFeat(start, minU64(start+codon2Rem, end), NewStopCodonKind(nil))
					codon2Rem -= fx.Span()
					codon2End := fx.End()
					feats = append(feats, fx)
					if codon2End < end {
						feats = append(feats, mkFeat(codon2End, end, utr2))
					}
				} else {
					feats = append(feats, mkFeat(start, end, utr2))
				}
			case StrandReverse:
				feats, codon2Rem = backtrackAndPush(exons, feats, NewStartCodonKind(nil), codon2Rem, mkFeat)
				feats = append(feats, mkFeat(start, end, utr2))
			default:
				feats = append(feats, mkFeat(start, end, utr2))
			}
			exons = append(exons, mkExon(start, end, feats))
		}
	}

	switch strand {
	case StrandForward:
		setCodingFrames(exons)
	case StrandReverse:
		reversed := make([]*Exon, len(exons))
		for i, ex := range exons {
			reversed[len(exons)-1-i] = ex
		}
		setCodingFrames(reversed)
	}

	return exons, nil
}

func subOrZero(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// backtrackAndPush pushes the unconsumed remainder of a boundary codon into
// previously emitted exons, walking backwards in genomic order. pending
// holds the sub-features already queued for the exon currently being built
// (not yet appended to exons); it is returned unmodified since the
// backtrack only ever touches already-emitted exons.
//
// When the newly pushed codon fragment would abut a previously emitted UTR
// at the same boundary, that UTR is shrunk (or dropped, if it would become
// degenerate) to avoid a zero-width gap.
func backtrackAndPush(
	exons []*Exon,
	pending []ExonFeature,
	kind ExonFeatureKind,
	codonRem uint64,
	mkFeat func(uint64, uint64, ExonFeatureKind) ExonFeature,
) ([]ExonFeature, uint64) {
	for i := len(exons) - 1; i >= 0 && codonRem > 0; i-- {
		ex := exons[i]
		fx := mkFeat(maxU64(ex.Start(), subOrZero(ex.End(), codonRem)), ex.End(), kind)
		codonRem -= fx.Span()

		feats := ex.features
		if n := len(feats); n > 0 {
			prev := feats[n-1]
			if prev.Kind().Tag() == ExonUTR3 && fx.Kind().Tag() == ExonStopCodon {
				if prev.Start() == fx.Start() {
					feats = feats[:n-1]
				} else {
					feats[n-1] = prev.withInterval(mustInterval(prev.Start(), fx.Start()))
				}
			}
		}
		feats = append(feats, fx)
		ex.features = feats
	}
	return pending, codonRem
}

func mustInterval(start, end uint64) Interval {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// setCodingFrames walks exons in transcription order, assigning frames to
// StartCodon/CDS/StopCodon sub-features from three independent running
// counters.
func setCodingFrames(exons []*Exon) {
	var startFrame, cdsFrame, stopFrame uint8
	for _, ex := range exons {
		for i, fx := range ex.features {
			switch fx.Kind().Tag() {
			case ExonStartCodon:
				ex.features[i] = fx.withKind(fx.Kind().withFrame(startFrame))
				startFrame = calcNextFrame(fx.Span(), startFrame)
			case ExonCDS:
				ex.features[i] = fx.withKind(fx.Kind().withFrame(cdsFrame))
				cdsFrame = calcNextFrame(fx.Span(), cdsFrame)
			case ExonStopCodon:
				ex.features[i] = fx.withKind(fx.Kind().withFrame(stopFrame))
				stopFrame = calcNextFrame(fx.Span(), stopFrame)
			}
		}
	}
}

// calcNextFrame computes the frame of the next coding feature of the same
// kind after one spanning curSpan bases at curFrame, per the refFlat/GTF
// frame convention.
func calcNextFrame(curSpan uint64, curFrame uint8) uint8 {
	cur := uint64(curFrame)
	if curSpan >= cur {
		return uint8((3 - ((curSpan - cur) % 3)) % 3)
	}
	return uint8(3 - (cur-curSpan)%3)
}
