// Package ingest turns uploaded flight/PNR files into entity records.
package ingest

import "strings"

// DefaultMarker identifies PNR rows: any first field containing it is a PNR.
const DefaultMarker = "PNR"

type RowKind int

const (
	RowSkip RowKind = iota
	RowFlight
	RowPNR
)

func (k RowKind) String() string {
	switch k {
	case RowFlight:
		return "flight"
	case RowPNR:
		return "pnr"
	default:
		return "skip"
	}
}

type Classifier struct {
	Marker string
}

func NewClassifier(marker string) Classifier {
	if marker == "" {
		marker = DefaultMarker
	}
	return Classifier{Marker: marker}
}

// Classify looks only at the first field. Rows without one are skipped.
func (c Classifier) Classify(row []string) RowKind {
	if len(row) == 0 {
		return RowSkip
	}
	first := strings.TrimSpace(row[0])
	if first == "" {
		return RowSkip
	}
	if strings.Contains(first, c.marker()) {
		return RowPNR
	}
	return RowFlight
}

func (c Classifier) marker() string {
	if c.Marker == "" {
		return DefaultMarker
	}
	return c.Marker
}
