package request

import (
	"io"

	"flight-allocation/internal/data/entity"
)

type AllocationRequest struct {
	Flights []FlightInput `json:"flights" validate:"required,unique=ID,dive"`
	PNRs    []PNRInput    `json:"pnrs" validate:"required,unique=ID,dive"`
}

type FlightInput struct {
	ID       string `json:"id" validate:"required"`
	Origin   string `json:"origin" validate:"required"`
	Dest     string `json:"dest" validate:"required"`
	Capacity int64  `json:"capacity" validate:"gte=0"`
}

type PNRInput struct {
	ID     string `json:"id" validate:"required"`
	Amount int64  `json:"amount" validate:"gte=0"`
	Origin string `json:"origin" validate:"required"`
	Dest   string `json:"dest" validate:"required"`
}

// UploadFile is one uploaded CSV file.
type UploadFile struct {
	Name    string
	Content io.Reader
}

func (r *AllocationRequest) ToEntities() ([]entity.Flight, []entity.PNR) {
	flights := make([]entity.Flight, len(r.Flights))
	for i, f := range r.Flights {
		flights[i] = entity.Flight{ID: f.ID, Origin: f.Origin, Dest: f.Dest, Capacity: f.Capacity}
	}
	pnrs := make([]entity.PNR, len(r.PNRs))
	for i, p := range r.PNRs {
		pnrs[i] = entity.PNR{ID: p.ID, Amount: p.Amount, Origin: p.Origin, Dest: p.Dest}
	}
	return flights, pnrs
}

// NewAllocationRequest turns ingested records back into a request so that
// uploads go through the same validation as JSON input.
func NewAllocationRequest(flights []entity.Flight, pnrs []entity.PNR) *AllocationRequest {
	req := &AllocationRequest{
		Flights: make([]FlightInput, len(flights)),
		PNRs:    make([]PNRInput, len(pnrs)),
	}
	for i, f := range flights {
		req.Flights[i] = FlightInput{ID: f.ID, Origin: f.Origin, Dest: f.Dest, Capacity: f.Capacity}
	}
	for i, p := range pnrs {
		req.PNRs[i] = PNRInput{ID: p.ID, Amount: p.Amount, Origin: p.Origin, Dest: p.Dest}
	}
	return req
}
