package gfxtools

// TBuilder builds a Transcript, resolving either a pre-made exon list or a
// set of exon/coding coordinates through the inference engine.
type TBuilder struct {
	seqName        string
	start          uint64
	end            uint64
	strand         *Strand
	strandChar     *byte
	id             *string
	geneID         *string
	attributes     *Attributes
	exons          []*Exon
	exonCoords     []Coord
	codingCoord    *Coord
	codingInclStop bool
}

// NewTBuilder starts a new transcript builder for the given interval.
func NewTBuilder(seqName string, start, end uint64) *TBuilder {
	return &TBuilder{seqName: seqName, start: start, end: end, attributes: NewAttributes()}
}

// Strand sets the transcript's strand by value.
func (b *TBuilder) Strand(s Strand) *TBuilder {
	b.strand = &s
	return b
}

// StrandChar sets the transcript's strand by its character representation.
func (b *TBuilder) StrandChar(c byte) *TBuilder {
	b.strandChar = &c
	return b
}

// ID sets the transcript's identifier.
func (b *TBuilder) ID(id string) *TBuilder {
	b.id = &id
	return b
}

// GeneID sets the transcript's gene identifier.
func (b *TBuilder) GeneID(id string) *TBuilder {
	b.geneID = &id
	return b
}

// Attribute appends a single key/value attribute.
func (b *TBuilder) Attribute(key, value string) *TBuilder {
	b.attributes.Insert(key, value)
	return b
}

// Attributes replaces the transcript's entire attribute multimap.
func (b *TBuilder) Attributes(attrs *Attributes) *TBuilder {
	b.attributes = attrs
	return b
}

// Exons sets pre-made exons for the transcript. When supplied, these take
// precedence over Coords and no inference runs.
func (b *TBuilder) Exons(exons []*Exon) *TBuilder {
	if len(exons) == 0 {
		b.exons = nil
	} else {
		b.exons = exons
	}
	return b
}

// Coords sets the transcript's exons by coordinate, with an optional coding
// coordinate. If codingCoord is set, every exon will be filled with the
// appropriate UTR/start-codon/CDS/stop-codon sub-features.
func (b *TBuilder) Coords(exonCoords []Coord, codingCoord *Coord) *TBuilder {
	b.exonCoords = exonCoords
	b.codingCoord = codingCoord
	return b
}

// CodingInclStop sets whether the coding coordinate passed to Coords
// includes the stop codon. Ignored if no coding coordinate was set.
func (b *TBuilder) CodingInclStop(inclStop bool) *TBuilder {
	b.codingInclStop = inclStop
	return b
}

// Build validates the accumulated inputs and constructs the Transcript.
func (b *TBuilder) Build() (*Transcript, error) {
	interval, err := NewInterval(b.start, b.end)
	if err != nil {
		return nil, err
	}
	strand, err := resolveStrand(b.strand, b.strandChar)
	if err != nil {
		return nil, err
	}
	exons, err := resolveExonsInput(
		b.seqName, interval, strand, b.id, b.geneID,
		b.exons, b.exonCoords, b.codingCoord, b.codingInclStop,
	)
	if err != nil {
		return nil, err
	}
	attrs := b.attributes
	if attrs == nil {
		attrs = NewAttributes()
	}
	return &Transcript{
		seqName:    b.seqName,
		interval:   interval,
		strand:     strand,
		id:         b.id,
		geneID:     b.geneID,
		attributes: attrs,
		exons:      exons,
	}, nil
}
