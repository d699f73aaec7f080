package response

import (
	"time"

	"flight-allocation/internal/allocation"
	"flight-allocation/internal/data/entity"
)

type AllocationResponse struct {
	RunID       string                `json:"run_id"`
	Label       string                `json:"label"`
	Assignments []AssignmentResponse  `json:"assignments"`
	Unassigned  []string              `json:"unassigned"`
	Flights     []FlightUsageResponse `json:"flights"`
	PNRs        []PNRStatusResponse   `json:"pnrs"`
	Summary     AllocationSummary     `json:"summary"`
	CreatedAt   time.Time             `json:"created_at"`
}

type AssignmentResponse struct {
	PNRID    string `json:"pnr_id"`
	FlightID string `json:"flight_id"`
}

type FlightUsageResponse struct {
	ID       string `json:"id"`
	Origin   string `json:"origin"`
	Dest     string `json:"dest"`
	Capacity int64  `json:"capacity"`
	Assigned int64  `json:"assigned"`
	Rest     int64  `json:"rest"`
}

// PNRStatusResponse covers every input PNR, assigned or not, in input order.
type PNRStatusResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Origin   string `json:"origin"`
	Dest     string `json:"dest"`
	FlightID string `json:"flight_id,omitempty"`
}

func (p PNRStatusResponse) Assigned() bool {
	return p.FlightID != ""
}

type AllocationSummary struct {
	PNRs          int   `json:"pnrs"`
	Flights       int   `json:"flights"`
	Assigned      int   `json:"assigned"`
	Unassigned    int   `json:"unassigned"`
	SeatsAssigned int64 `json:"seats_assigned"`
	FlightsUsed   int   `json:"flights_used"`
}

// Helper converters
func AllocationToResponse(flights []entity.Flight, pnrs []entity.PNR, res allocation.Result) AllocationResponse {
	resp := AllocationResponse{
		Assignments: make([]AssignmentResponse, 0, len(res.Assignment)),
		Unassigned:  append(make([]string, 0, len(res.Unassigned)), res.Unassigned...),
		Flights:     make([]FlightUsageResponse, len(flights)),
		PNRs:        make([]PNRStatusResponse, len(pnrs)),
	}

	for _, pnrID := range res.Assignment.PNRIDs() {
		resp.Assignments = append(resp.Assignments, AssignmentResponse{
			PNRID:    pnrID,
			FlightID: res.Assignment[pnrID],
		})
	}

	for i, f := range flights {
		rest := f.Capacity
		if i < len(res.Flights) {
			rest = res.Flights[i].Capacity
		}
		resp.Flights[i] = FlightUsageResponse{
			ID:       f.ID,
			Origin:   f.Origin,
			Dest:     f.Dest,
			Capacity: f.Capacity,
			Assigned: f.Capacity - rest,
			Rest:     rest,
		}
	}

	var seats int64
	for i, p := range pnrs {
		flightID, ok := res.Assignment.FlightOf(p.ID)
		if ok {
			seats += p.Amount
		}
		resp.PNRs[i] = PNRStatusResponse{
			ID:       p.ID,
			Amount:   p.Amount,
			Origin:   p.Origin,
			Dest:     p.Dest,
			FlightID: flightID,
		}
	}

	resp.Summary = AllocationSummary{
		PNRs:          len(pnrs),
		Flights:       len(flights),
		Assigned:      len(res.Assignment),
		Unassigned:    len(res.Unassigned),
		SeatsAssigned: seats,
		FlightsUsed:   res.Assignment.FlightsUsed(),
	}

	return resp
}
