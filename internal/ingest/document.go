package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["flights", "pnrs"],
	"properties": {
		"flights": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "origin", "dest", "capacity"],
				"properties": {
					"id":       {"type": "string", "minLength": 1},
					"origin":   {"type": "string"},
					"dest":     {"type": "string"},
					"capacity": {"type": "integer", "minimum": 0}
				}
			}
		},
		"pnrs": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "amount", "origin", "dest"],
				"properties": {
					"id":     {"type": "string", "minLength": 1},
					"amount": {"type": "integer", "minimum": 0},
					"origin": {"type": "string"},
					"dest":   {"type": "string"}
				}
			}
		}
	}
}`

var schema = func() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
	if err != nil {
		panic(fmt.Sprintf("compile allocation document schema: %v", err))
	}
	return s
}()

// ParseJSON reads a {"flights": [...], "pnrs": [...]} document.
func ParseJSON(r io.Reader) (Batch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Batch{}, fmt.Errorf("read document: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return Batch{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return Batch{}, fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
	}

	var batch Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return Batch{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return batch, nil
}
