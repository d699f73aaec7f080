package allocation

import (
	"sort"

	"flight-allocation/internal/data/entity"
)

// workingSet is the per-run flight state. flights is a private copy of the
// input, addressed by input index; active holds the indexes still open for
// assignment ordered by remaining capacity, largest first.
type workingSet struct {
	flights []entity.Flight
	active  []int
}

func newWorkingSet(flights []entity.Flight) *workingSet {
	ws := &workingSet{
		flights: make([]entity.Flight, len(flights)),
		active:  make([]int, 0, len(flights)),
	}
	copy(ws.flights, flights)

	for i := range ws.flights {
		if ws.flights[i].Capacity > 0 {
			ws.active = append(ws.active, i)
		}
	}
	ws.reorder()
	return ws
}

// route returns the active flights serving origin -> dest, largest first.
func (ws *workingSet) route(origin, dest string) []int {
	var matches []int
	for _, fi := range ws.active {
		if ws.flights[fi].Serves(origin, dest) {
			matches = append(matches, fi)
		}
	}
	return matches
}

// consume takes amount seats from flight fi, closes it when it runs out and
// restores the capacity order.
func (ws *workingSet) consume(fi int, amount int64) {
	ws.flights[fi].Capacity -= amount

	open := ws.active[:0]
	for _, i := range ws.active {
		if ws.flights[i].Capacity > 0 {
			open = append(open, i)
		}
	}
	ws.active = open
	ws.reorder()
}

func (ws *workingSet) reorder() {
	sort.SliceStable(ws.active, func(i, j int) bool {
		a, b := ws.flights[ws.active[i]], ws.flights[ws.active[j]]
		if a.Capacity != b.Capacity {
			return a.Capacity > b.Capacity
		}
		return ws.active[i] < ws.active[j]
	})
}
