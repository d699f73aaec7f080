package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-allocation/internal/allocation"
	"flight-allocation/internal/dto/request"
	"flight-allocation/internal/dto/response"
	"flight-allocation/internal/ingest"
	"flight-allocation/pkg/utils"

	"go.uber.org/zap"
)

var (
	ErrNotEnoughFiles = errors.New("invalid upload: not enough files")
	ErrMissingFlights = errors.New("invalid request: flights are missing")
	ErrMissingPNRs    = errors.New("invalid request: pnrs are missing")
)

type AllocationService interface {
	// Allocate runs the engine over structured input.
	Allocate(ctx context.Context, req *request.AllocationRequest) (*response.AllocationResponse, error)

	// AllocateUploads parses every file, merges the rows and runs the engine once.
	AllocateUploads(ctx context.Context, files []request.UploadFile) (*response.AllocationResponse, error)
}

type allocationService struct {
	allocator allocation.Allocator
	parser    *ingest.Parser
	minFiles  int
	now       func() time.Time
	log       *zap.Logger
}

type AllocationOption func(*allocationService)

// WithClock overrides time.Now, used by tests.
func WithClock(now func() time.Time) AllocationOption {
	return func(s *allocationService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewAllocationService(config *utils.Config, log *zap.Logger, opts ...AllocationOption) AllocationService {
	log = log.With(zap.String("service", "allocation"))

	minFiles := config.Upload.MinFiles
	if minFiles < 1 {
		minFiles = 1
	}

	s := &allocationService{
		allocator: allocation.GreedyAllocator(allocation.WithLogger(log)),
		parser:    ingest.NewParser(config.Allocation.PNRMarker),
		minFiles:  minFiles,
		now:       time.Now,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *allocationService) Allocate(ctx context.Context, req *request.AllocationRequest) (*response.AllocationResponse, error) {
	if req.Flights == nil {
		return nil, ErrMissingFlights
	}
	if req.PNRs == nil {
		return nil, ErrMissingPNRs
	}

	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Allocation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("allocate: %w", err)
	}

	flights, pnrs := req.ToEntities()

	runID := utils.GenerateUUID()
	start := s.now()

	s.log.Info("Allocation started",
		zap.String("run_id", runID.String()),
		zap.Int("flights", len(flights)),
		zap.Int("pnrs", len(pnrs)),
	)

	res := s.allocator.AllocateDetailed(flights, pnrs)

	resp := response.AllocationToResponse(flights, pnrs, res)
	resp.RunID = runID.String()
	resp.Label = utils.GenerateRunLabel(runID, start)
	resp.CreatedAt = start

	s.log.Info("Allocation finished",
		zap.String("run_id", resp.RunID),
		zap.Int("assigned", resp.Summary.Assigned),
		zap.Int("unassigned", resp.Summary.Unassigned),
		zap.Int64("seats_assigned", resp.Summary.SeatsAssigned),
		zap.Int("flights_used", resp.Summary.FlightsUsed),
		zap.Duration("duration", s.now().Sub(start)),
	)

	return &resp, nil
}

func (s *allocationService) AllocateUploads(ctx context.Context, files []request.UploadFile) (*response.AllocationResponse, error) {
	if len(files) < s.minFiles {
		s.log.Warn("Upload rejected", zap.Int("files", len(files)), zap.Int("min_files", s.minFiles))
		return nil, ErrNotEnoughFiles
	}

	var batch ingest.Batch
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("parse uploads: %w", err)
		}

		parsed, err := s.parser.ParseCSV(file.Name, file.Content)
		if err != nil {
			s.log.Warn("Failed to parse upload", zap.String("file", file.Name), zap.Error(err))
			return nil, fmt.Errorf("parse %s: %w", file.Name, err)
		}
		s.log.Debug("Upload parsed",
			zap.String("file", file.Name),
			zap.Int("flights", len(parsed.Flights)),
			zap.Int("pnrs", len(parsed.PNRs)),
		)
		batch.Merge(parsed)
	}

	return s.Allocate(ctx, request.NewAllocationRequest(batch.Flights, batch.PNRs))
}
