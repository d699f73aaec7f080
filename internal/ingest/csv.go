package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"flight-allocation/internal/data/entity"
)

// Column layout, positional, no header row:
//
//	flight: id, origin, dest, capacity
//	pnr:    id, amount, origin, dest
const rowFields = 4

// Batch is everything read from one or more files.
type Batch struct {
	Flights []entity.Flight `json:"flights"`
	PNRs    []entity.PNR    `json:"pnrs"`
}

func (b *Batch) Merge(other Batch) {
	b.Flights = append(b.Flights, other.Flights...)
	b.PNRs = append(b.PNRs, other.PNRs...)
}

type Parser struct {
	Classifier Classifier
}

func NewParser(marker string) *Parser {
	return &Parser{Classifier: NewClassifier(marker)}
}

// ParseCSV reads r with the default PNR marker.
func ParseCSV(source string, r io.Reader) (Batch, error) {
	return NewParser(DefaultMarker).ParseCSV(source, r)
}

func (p *Parser) ParseCSV(source string, r io.Reader) (Batch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var batch Batch
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Batch{}, fmt.Errorf("read %s: %w", source, err)
		}
		line, _ := reader.FieldPos(0)

		kind := p.Classifier.Classify(row)
		if kind == RowSkip {
			continue
		}
		if len(row) < rowFields {
			return Batch{}, &RowError{
				Source: source,
				Line:   line,
				Reason: fmt.Sprintf("%s row needs %d fields, got %d", kind, rowFields, len(row)),
			}
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}

		switch kind {
		case RowPNR:
			amount, err := parseSeats(row[1])
			if err != nil {
				return Batch{}, &RowError{Source: source, Line: line, Reason: "amount " + err.Error()}
			}
			batch.PNRs = append(batch.PNRs, entity.PNR{
				ID:     row[0],
				Amount: amount,
				Origin: row[2],
				Dest:   row[3],
			})
		case RowFlight:
			capacity, err := parseSeats(row[3])
			if err != nil {
				return Batch{}, &RowError{Source: source, Line: line, Reason: "capacity " + err.Error()}
			}
			batch.Flights = append(batch.Flights, entity.Flight{
				ID:       row[0],
				Origin:   row[1],
				Dest:     row[2],
				Capacity: capacity,
			})
		}
	}

	return batch, nil
}

// parseSeats converts a seat count to a number so that ordering is numeric.
func parseSeats(v string) (int64, error) {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%q must not be negative", v)
	}
	return n, nil
}
