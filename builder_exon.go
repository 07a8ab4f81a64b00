package gfxtools

// EBuilder builds an Exon from its component values, validating the
// interval and strand at Build time. It performs no
// inference; any sub-features supplied via Features are taken as is.
type EBuilder struct {
	seqName      string
	start        uint64
	end          uint64
	strand       *Strand
	strandChar   *byte
	id           *string
	transcriptID *string
	geneID       *string
	attributes   *Attributes
	features     []ExonFeature
}

// NewEBuilder starts a new exon builder for the given interval.
func NewEBuilder(seqName string, start, end uint64) *EBuilder {
	return &EBuilder{seqName: seqName, start: start, end: end, attributes: NewAttributes()}
}

// Strand sets the exon's strand by value.
func (b *EBuilder) Strand(s Strand) *EBuilder {
	b.strand = &s
	return b
}

// StrandChar sets the exon's strand by its character representation.
func (b *EBuilder) StrandChar(c byte) *EBuilder {
	b.strandChar = &c
	return b
}

// ID sets the exon's identifier.
func (b *EBuilder) ID(id string) *EBuilder {
	b.id = &id
	return b
}

// TranscriptID sets the exon's transcript identifier.
func (b *EBuilder) TranscriptID(id string) *EBuilder {
	b.transcriptID = &id
	return b
}

// GeneID sets the exon's gene identifier.
func (b *EBuilder) GeneID(id string) *EBuilder {
	b.geneID = &id
	return b
}

// Attribute appends a single key/value attribute.
func (b *EBuilder) Attribute(key, value string) *EBuilder {
	b.attributes.Insert(key, value)
	return b
}

// Attributes replaces the exon's entire attribute multimap.
func (b *EBuilder) Attributes(attrs *Attributes) *EBuilder {
	b.attributes = attrs
	return b
}

// Features sets pre-made sub-features for the exon.
func (b *EBuilder) Features(features []ExonFeature) *EBuilder {
	b.features = features
	return b
}

// Build validates the accumulated inputs and constructs the Exon.
func (b *EBuilder) Build() (*Exon, error) {
	interval, err := NewInterval(b.start, b.end)
	if err != nil {
		return nil, err
	}
	strand, err := resolveStrand(b.strand, b.strandChar)
	if err != nil {
		return nil, err
	}
	attrs := b.attributes
	if attrs == nil {
		attrs = NewAttributes()
	}
	return &Exon{
		seqName:      b.seqName,
		interval:     interval,
		strand:       strand,
		id:           b.id,
		transcriptID: b.transcriptID,
		geneID:       b.geneID,
		attributes:   attrs,
		features:     b.features,
	}, nil
}
