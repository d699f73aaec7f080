package allocation

import (
	"sort"

	"flight-allocation/internal/data/entity"

	"go.uber.org/zap"
)

type greedyAllocator struct {
	log *zap.Logger
}

func (a *greedyAllocator) Allocate(flights []entity.Flight, pnrs []entity.PNR) entity.Assignment {
	return a.AllocateDetailed(flights, pnrs).Assignment
}

func (a *greedyAllocator) AllocateDetailed(flights []entity.Flight, pnrs []entity.PNR) Result {
	ws := newWorkingSet(flights)
	assignment := make(entity.Assignment, len(pnrs))
	var unassigned []string

	for _, i := range byAmountDesc(pnrs) {
		pnr := &pnrs[i]

		fi, ok := a.pick(ws, pnr)
		if !ok {
			unassigned = append(unassigned, pnr.ID)
			continue
		}

		assignment[pnr.ID] = ws.flights[fi].ID
		ws.consume(fi, pnr.Amount)

		if ce := a.log.Check(zap.DebugLevel, "PNR assigned"); ce != nil {
			ce.Write(
				zap.String("pnr_id", pnr.ID),
				zap.String("flight_id", ws.flights[fi].ID),
				zap.Int64("amount", pnr.Amount),
				zap.Int64("capacity_rest", ws.flights[fi].Capacity),
			)
		}
	}

	return Result{
		Assignment: assignment,
		Flights:    ws.flights,
		Unassigned: unassigned,
	}
}

// pick returns the working index of the flight pnr goes to.
func (a *greedyAllocator) pick(ws *workingSet, pnr *entity.PNR) (int, bool) {
	candidates := ws.route(pnr.Origin, pnr.Dest)
	if len(candidates) == 0 {
		a.log.Debug("No flight on route",
			zap.String("pnr_id", pnr.ID),
			zap.String("origin", pnr.Origin),
			zap.String("dest", pnr.Dest),
		)
		return 0, false
	}

	// Only the largest flight on the route is tried. Every other match has
	// no more room than it, so a PNR that misses it fits nowhere.
	fi := candidates[0]
	if pnr.Amount <= ws.flights[fi].Capacity {
		return fi, true
	}

	a.log.Debug("PNR does not fit",
		zap.String("pnr_id", pnr.ID),
		zap.Int64("amount", pnr.Amount),
		zap.Int64("largest_capacity", ws.flights[fi].Capacity),
	)
	return 0, false
}

// byAmountDesc returns PNR indexes, largest group first. Equal amounts keep
// input order.
func byAmountDesc(pnrs []entity.PNR) []int {
	order := make([]int, len(pnrs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return pnrs[order[i]].Amount > pnrs[order[j]].Amount
	})
	return order
}
