package allocation

import (
	"fmt"
	"math/rand"
	"testing"

	"flight-allocation/internal/data/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func flight(id, origin, dest string, capacity int64) entity.Flight {
	return entity.Flight{ID: id, Origin: origin, Dest: dest, Capacity: capacity}
}

func pnr(id string, amount int64, origin, dest string) entity.PNR {
	return entity.PNR{ID: id, Amount: amount, Origin: origin, Dest: dest}
}

func TestAllocate_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		flights []entity.Flight
		pnrs    []entity.PNR
		want    entity.Assignment
	}{
		{
			name:    "single PNR fits single flight",
			flights: []entity.Flight{flight("F1", "A", "B", 100)},
			pnrs:    []entity.PNR{pnr("PNR1", 60, "A", "B")},
			want:    entity.Assignment{"PNR1": "F1"},
		},
		{
			name:    "larger PNR exhausts capacity first",
			flights: []entity.Flight{flight("F1", "A", "B", 50)},
			pnrs: []entity.PNR{
				pnr("PNR2", 20, "A", "B"),
				pnr("PNR1", 40, "A", "B"),
			},
			want: entity.Assignment{"PNR1": "F1"},
		},
		{
			name:    "no flight on route",
			flights: []entity.Flight{flight("F1", "A", "B", 100)},
			pnrs:    []entity.PNR{pnr("PNR1", 10, "C", "D")},
			want:    entity.Assignment{},
		},
		{
			name: "largest flight on route wins",
			flights: []entity.Flight{
				flight("F2", "A", "B", 30),
				flight("F1", "A", "B", 100),
			},
			pnrs: []entity.PNR{pnr("PNR1", 90, "A", "B")},
			want: entity.Assignment{"PNR1": "F1"},
		},
		{
			name: "flight that shrinks below the next one yields the route",
			flights: []entity.Flight{
				flight("F1", "A", "B", 100),
				flight("F2", "A", "B", 30),
			},
			pnrs: []entity.PNR{
				pnr("PNR1", 90, "A", "B"),
				pnr("PNR2", 25, "A", "B"),
			},
			// PNR1 leaves F1 with 10, F2 (30) is now the largest and takes PNR2.
			want: entity.Assignment{"PNR1": "F1", "PNR2": "F2"},
		},
		{
			name: "reverse route is a different route",
			flights: []entity.Flight{
				flight("F1", "B", "A", 100),
			},
			pnrs: []entity.PNR{pnr("PNR1", 10, "A", "B")},
			want: entity.Assignment{},
		},
		{
			name: "exact fit depletes flight",
			flights: []entity.Flight{
				flight("F1", "A", "B", 40),
			},
			pnrs: []entity.PNR{
				pnr("PNR1", 40, "A", "B"),
				pnr("PNR2", 1, "A", "B"),
			},
			want: entity.Assignment{"PNR1": "F1"},
		},
		{
			name:    "empty inputs",
			flights: nil,
			pnrs:    nil,
			want:    entity.Assignment{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(tt.flights, tt.pnrs)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Allocate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAllocateDetailed_RemainingCapacity(t *testing.T) {
	flights := []entity.Flight{
		flight("F1", "A", "B", 50),
		flight("F2", "A", "B", 45),
	}
	pnrs := []entity.PNR{
		pnr("PNR1", 30, "A", "B"), // F1 -> 20, F2 now largest
		pnr("PNR2", 30, "A", "B"), // F2 -> 15, F1 now largest
		pnr("PNR3", 18, "A", "B"), // F1 -> 2
		pnr("PNR4", 16, "A", "B"), // largest is F2 with 15
	}

	res := GreedyAllocator().AllocateDetailed(flights, pnrs)

	assert.Equal(t, entity.Assignment{"PNR1": "F1", "PNR2": "F2", "PNR3": "F1"}, res.Assignment)
	assert.Equal(t, []string{"PNR4"}, res.Unassigned)
	assert.Equal(t, []entity.Flight{
		flight("F1", "A", "B", 2),
		flight("F2", "A", "B", 15),
	}, res.Flights)
}

func TestAllocate_TiesFollowInputOrder(t *testing.T) {
	flights := []entity.Flight{
		flight("F1", "A", "B", 50),
		flight("F2", "A", "B", 50),
	}
	pnrs := []entity.PNR{
		pnr("PNR1", 10, "A", "B"), // tie on capacity, F1 comes first
		pnr("PNR2", 10, "A", "B"), // F2 (50) now larger than F1 (40)
	}

	got := Allocate(flights, pnrs)

	assert.Equal(t, entity.Assignment{"PNR1": "F1", "PNR2": "F2"}, got)
}

func TestAllocate_IgnoresClosedFlights(t *testing.T) {
	flights := []entity.Flight{
		flight("F1", "A", "B", 0),
		flight("F2", "A", "B", -5),
	}
	pnrs := []entity.PNR{pnr("PNR1", 0, "A", "B")}

	res := GreedyAllocator().AllocateDetailed(flights, pnrs)

	assert.Empty(t, res.Assignment)
	assert.Equal(t, []string{"PNR1"}, res.Unassigned)
}

func TestAllocate_DoesNotTouchInput(t *testing.T) {
	flights := []entity.Flight{
		flight("F2", "A", "B", 30),
		flight("F1", "A", "B", 100),
	}
	pnrs := []entity.PNR{
		pnr("PNR2", 5, "A", "B"),
		pnr("PNR1", 90, "A", "B"),
	}
	flightsBefore := append([]entity.Flight(nil), flights...)
	pnrsBefore := append([]entity.PNR(nil), pnrs...)

	_ = Allocate(flights, pnrs)

	if diff := cmp.Diff(flightsBefore, flights); diff != "" {
		t.Errorf("flights modified (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(pnrsBefore, pnrs); diff != "" {
		t.Errorf("pnrs modified (-before +after):\n%s", diff)
	}
}

func TestAllocate_EmptyPNRsLeaveCapacity(t *testing.T) {
	flights := []entity.Flight{
		flight("F1", "A", "B", 100),
		flight("F2", "C", "D", 30),
	}

	res := GreedyAllocator().AllocateDetailed(flights, nil)

	assert.Empty(t, res.Assignment)
	assert.Empty(t, res.Unassigned)
	assert.Equal(t, flights, res.Flights)
}

func TestAllocate_Properties(t *testing.T) {
	routes := [][2]string{{"TLV", "LHR"}, {"LHR", "TLV"}, {"JFK", "SFO"}, {"CDG", "FCO"}}
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		var flights []entity.Flight
		nFlights, nPNRs := rng.Intn(8), rng.Intn(30)
		for i := 0; i < nFlights; i++ {
			r := routes[rng.Intn(len(routes))]
			flights = append(flights, flight(fmt.Sprintf("F%d", i), r[0], r[1], int64(rng.Intn(120))))
		}
		var pnrs []entity.PNR
		for i := 0; i < nPNRs; i++ {
			r := routes[rng.Intn(len(routes))]
			pnrs = append(pnrs, pnr(fmt.Sprintf("PNR%d", i), int64(1+rng.Intn(60)), r[0], r[1]))
		}

		res := GreedyAllocator().AllocateDetailed(flights, pnrs)

		flightByID := make(map[string]entity.Flight, len(flights))
		for _, f := range flights {
			flightByID[f.ID] = f
		}
		used := make(map[string]int64)

		for _, p := range pnrs {
			flightID, ok := res.Assignment.FlightOf(p.ID)
			if !ok {
				continue
			}
			f, exists := flightByID[flightID]
			require.True(t, exists, "run %d: %s assigned to unknown flight %s", run, p.ID, flightID)
			require.True(t, f.Serves(p.Origin, p.Dest), "run %d: %s on wrong route", run, p.ID)
			used[flightID] += p.Amount
		}

		require.Len(t, res.Flights, len(flights))
		for i, f := range flights {
			require.LessOrEqual(t, used[f.ID], f.Capacity, "run %d: %s overbooked", run, f.ID)
			require.Equal(t, f.Capacity-used[f.ID], res.Flights[i].Capacity, "run %d: %s", run, f.ID)
			require.LessOrEqual(t, res.Flights[i].Capacity, f.Capacity)
		}

		require.Equal(t, len(pnrs), len(res.Assignment)+len(res.Unassigned), "run %d", run)
	}
}

func TestAllocate_ConcurrentRunsShareInput(t *testing.T) {
	flights := []entity.Flight{
		flight("F1", "A", "B", 100),
		flight("F2", "A", "B", 60),
		flight("F3", "C", "D", 40),
	}
	pnrs := []entity.PNR{
		pnr("PNR1", 70, "A", "B"),
		pnr("PNR2", 50, "A", "B"),
		pnr("PNR3", 35, "C", "D"),
		pnr("PNR4", 30, "A", "B"),
	}
	want := Allocate(flights, pnrs)

	results := make(chan entity.Assignment, 16)
	for i := 0; i < cap(results); i++ {
		go func() {
			results <- Allocate(flights, pnrs)
		}()
	}
	for i := 0; i < cap(results); i++ {
		assert.Equal(t, want, <-results)
	}
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	allocator := GreedyAllocator(WithLogger(zap.New(core)))

	allocator.Allocate(
		[]entity.Flight{flight("F1", "A", "B", 10)},
		[]entity.PNR{
			pnr("PNR1", 8, "A", "B"),
			pnr("PNR2", 5, "A", "B"),
			pnr("PNR3", 1, "X", "Y"),
		},
	)

	assert.Equal(t, 1, logs.FilterMessage("PNR assigned").Len())
	assert.Equal(t, 1, logs.FilterMessage("PNR does not fit").Len())
	assert.Equal(t, 1, logs.FilterMessage("No flight on route").Len())

	entry := logs.FilterMessage("PNR assigned").All()[0]
	assert.Equal(t, "F1", entry.ContextMap()["flight_id"])
	assert.Equal(t, "allocator", entry.ContextMap()["component"])
}
