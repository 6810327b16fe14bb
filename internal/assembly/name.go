package assembly

import (
	"strconv"
	"strings"
)

// Juicebox writes broken-contig fragments as "<orig>:::fragment_<n>", with
// an optional ":::debris" suffix on the trailing unassembled remainder.
// Older exports used "___" in place of ":::"; both spellings are recognized.
const (
	sepColons      = ":::"
	sepUnderscores = "___"

	fragmentToken = "fragment_"
)

// ContigName is a contig name parsed against the Juicebox break-naming
// convention. A name with no fragment marker is an unsplit contig.
type ContigName struct {
	// Raw is the name exactly as declared in the .assembly file.
	Raw string

	// Original is the name of the contig the fragment was split from.
	// For unsplit contigs it equals Raw.
	Original string

	// Index is the 1-based fragment index within the original contig.
	// Zero when HasIndex is false.
	Index int

	// IsFragment is true when the name carries a fragment marker.
	IsFragment bool

	// HasIndex is true when a fragment index could be parsed.
	HasIndex bool

	// IsDebris is true for the trailing unassembled remainder fragment.
	IsDebris bool
}

// ParseContigName classifies name against the break-naming convention.
// Parsing happens once at ingestion so downstream code never repeats
// substring matching.
func ParseContigName(name string) ContigName {
	sep := sepColons
	marker := sep + fragmentToken
	at := strings.LastIndex(name, marker)
	if at < 0 {
		sep = sepUnderscores
		marker = sep + fragmentToken
		at = strings.LastIndex(name, marker)
	}
	if at < 0 {
		return ContigName{Raw: name, Original: name}
	}

	cn := ContigName{
		Raw:        name,
		Original:   name[:at],
		IsFragment: true,
	}

	rest := name[at+len(marker):]
	if trimmed := strings.TrimSuffix(rest, sep+"debris"); trimmed != rest {
		cn.IsDebris = true
		rest = trimmed
	}

	if index, err := strconv.Atoi(rest); err == nil {
		cn.Index = index
		cn.HasIndex = true
	}

	return cn
}

// Display returns the name with the break separator normalized to the
// single canonical "___" spelling used in output scaffold names.
func (c ContigName) Display() string {
	return strings.ReplaceAll(c.Raw, sepColons, sepUnderscores)
}
