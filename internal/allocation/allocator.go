// Package allocation assigns PNRs to flights with a greedy largest-first
// bin packing that keeps every group on a flight serving its exact route.
package allocation

import (
	"flight-allocation/internal/data/entity"

	"go.uber.org/zap"
)

type Allocator interface {
	Allocate(flights []entity.Flight, pnrs []entity.PNR) entity.Assignment
	AllocateDetailed(flights []entity.Flight, pnrs []entity.PNR) Result
}

// Result is the full outcome of one run.
type Result struct {
	Assignment entity.Assignment

	// Flights holds every input flight, in input order, with the capacity
	// left after the run.
	Flights []entity.Flight

	// Unassigned lists the PNRs left without a flight, in processing order.
	Unassigned []string
}

type Option func(*greedyAllocator)

// WithLogger enables debug logging of every allocation decision.
func WithLogger(log *zap.Logger) Option {
	return func(a *greedyAllocator) {
		if log != nil {
			a.log = log.With(zap.String("component", "allocator"))
		}
	}
}

func GreedyAllocator(opts ...Option) Allocator {
	a := &greedyAllocator{
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAllocator = GreedyAllocator()

// Allocate runs the default single-candidate greedy policy.
func Allocate(flights []entity.Flight, pnrs []entity.PNR) entity.Assignment {
	return defaultAllocator.Allocate(flights, pnrs)
}
