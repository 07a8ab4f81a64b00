package gfxtools

// RawTranscriptCoords is the per-transcript input accepted by GBuilder's
// AddTranscriptCoords: the transcript's own interval, its exon coordinates,
// and an optional coding coordinate.
type RawTranscriptCoords struct {
	TranscriptCoord Coord
	ExonCoords      []Coord
	CodingCoord     *Coord
}

// GBuilder builds a Gene, aggregating transcripts in insertion order and
// validating that each transcript built from AddTranscriptCoords is fully
// enveloped by the gene's own coordinate. Pre-made transcripts supplied via
// Transcripts are not checked.
type GBuilder struct {
	seqName                  string
	start                    uint64
	end                      uint64
	strand                   *Strand
	strandChar               *byte
	id                       *string
	attributes               *Attributes
	transcripts              map[string]*Transcript
	transcriptIDOrder        []string
	transcriptCoordIDs       []string
	transcriptCoords         map[string]RawTranscriptCoords
	transcriptCodingInclStop bool
}

// NewGBuilder starts a new gene builder for the given interval.
func NewGBuilder(seqName string, start, end uint64) *GBuilder {
	return &GBuilder{seqName: seqName, start: start, end: end, attributes: NewAttributes()}
}

// Strand sets the gene's strand by value.
func (b *GBuilder) Strand(s Strand) *GBuilder {
	b.strand = &s
	return b
}

// StrandChar sets the gene's strand by its character representation.
func (b *GBuilder) StrandChar(c byte) *GBuilder {
	b.strandChar = &c
	return b
}

// ID sets the gene's identifier.
func (b *GBuilder) ID(id string) *GBuilder {
	b.id = &id
	return b
}

// Attribute appends a single key/value attribute.
func (b *GBuilder) Attribute(key, value string) *GBuilder {
	b.attributes.Insert(key, value)
	return b
}

// Attributes replaces the gene's entire attribute multimap.
func (b *GBuilder) Attributes(attrs *Attributes) *GBuilder {
	b.attributes = attrs
	return b
}

// Transcripts sets pre-made transcripts for the gene, in the given
// insertion order. When supplied, these take precedence over
// AddTranscriptCoords.
func (b *GBuilder) Transcripts(ids []string, transcripts map[string]*Transcript) *GBuilder {
	b.transcriptIDOrder = ids
	b.transcripts = transcripts
	return b
}

// AddTranscriptCoords appends one transcript's coordinate input, keyed by
// its identifier, preserving call order.
func (b *GBuilder) AddTranscriptCoords(id string, coords RawTranscriptCoords) *GBuilder {
	if b.transcriptCoords == nil {
		b.transcriptCoords = make(map[string]RawTranscriptCoords)
	}
	if _, ok := b.transcriptCoords[id]; !ok {
		b.transcriptCoordIDs = append(b.transcriptCoordIDs, id)
	}
	b.transcriptCoords[id] = coords
	return b
}

// TranscriptCodingInclStop sets whether coding coordinates passed via
// AddTranscriptCoords include the stop codon.
func (b *GBuilder) TranscriptCodingInclStop(inclStop bool) *GBuilder {
	b.transcriptCodingInclStop = inclStop
	return b
}

// Build validates the accumulated inputs and constructs the Gene.
func (b *GBuilder) Build() (*Gene, error) {
	interval, err := NewInterval(b.start, b.end)
	if err != nil {
		return nil, err
	}
	strand, err := resolveStrand(b.strand, b.strandChar)
	if err != nil {
		return nil, err
	}

	ids, transcripts, err := resolveTranscriptsInput(
		b.seqName, interval, strand, b.id,
		b.transcriptIDOrder, b.transcripts,
		b.transcriptCoordIDs, b.transcriptCoords,
		b.transcriptCodingInclStop,
	)
	if err != nil {
		return nil, err
	}

	attrs := b.attributes
	if attrs == nil {
		attrs = NewAttributes()
	}
	return &Gene{
		seqName:       b.seqName,
		interval:      interval,
		strand:        strand,
		id:            b.id,
		attributes:    attrs,
		transcripts:   transcripts,
		transcriptIDs: ids,
	}, nil
}

// resolveTranscriptsInput picks the transcript-construction path for a gene
// builder: pre-made transcripts take precedence, then coordinate-based
// construction via TBuilder, then the empty case.
func resolveTranscriptsInput(
	geneSeqName string,
	geneInterval Interval,
	geneStrand Strand,
	geneID *string,
	transcriptIDOrder []string,
	transcripts map[string]*Transcript,
	coordIDs []string,
	coords map[string]RawTranscriptCoords,
	codingInclStop bool,
) ([]string, map[string]*Transcript, error) {
	switch {
	case transcripts != nil:
		return transcriptIDOrder, transcripts, nil
	case coords == nil:
		return nil, map[string]*Transcript{}, nil
	default:
		ids := make([]string, 0, len(coordIDs))
		out := make(map[string]*Transcript, len(coordIDs))
		for _, tid := range coordIDs {
			rc := coords[tid]
			if rc.TranscriptCoord.Start < geneInterval.Start() || rc.TranscriptCoord.End > geneInterval.End() {
				return nil, nil, withID(ErrTranscriptNotFullyEnveloped, tid)
			}
			tb := NewTBuilder(geneSeqName, rc.TranscriptCoord.Start, rc.TranscriptCoord.End).
				Strand(geneStrand).
				ID(tid).
				Coords(rc.ExonCoords, rc.CodingCoord).
				CodingInclStop(codingInclStop)
			if geneID != nil {
				tb.GeneID(*geneID)
			}
			t, err := tb.Build()
			if err != nil {
				return nil, nil, err
			}
			out[tid] = t
			ids = append(ids, tid)
		}
		return ids, out, nil
	}
}
