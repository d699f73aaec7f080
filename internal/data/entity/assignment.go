package entity

import "sort"

// Assignment maps PNR id -> flight id. A PNR without an entry is unassigned.
type Assignment map[string]string

// FlightOf returns the flight assigned to pnrID, if any.
func (a Assignment) FlightOf(pnrID string) (string, bool) {
	flightID, ok := a[pnrID]
	return flightID, ok
}

// PNRIDs returns the assigned PNR ids in lexical order.
func (a Assignment) PNRIDs() []string {
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FlightsUsed counts the distinct flights that received at least one PNR.
func (a Assignment) FlightsUsed() int {
	used := make(map[string]struct{}, len(a))
	for _, flightID := range a {
		used[flightID] = struct{}{}
	}
	return len(used)
}
