package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"flight-allocation/internal/dto/request"
	"flight-allocation/internal/dto/response"
	"flight-allocation/internal/ingest"
	"flight-allocation/internal/usecase"
	"flight-allocation/pkg/utils"

	"go.uber.org/zap"
)

type allocateOptions struct {
	Files   []string
	JSON    string
	Marker  string
	Out     string
	Verbose bool
}

func doAllocate(ctx context.Context, opts allocateOptions, stdout, stderr io.Writer) error {
	log, err := utils.NewLogger(utils.LoggerOptions{Debug: opts.Verbose, Echo: stderr})
	if err != nil {
		return fmt.Errorf("init logger failed: %w", err)
	}
	defer log.Sync()
	if !opts.Verbose {
		log = log.WithOptions(zap.IncreaseLevel(zap.WarnLevel))
	}

	// A single mixed file is fine here, rows are told apart by the marker.
	config := &utils.Config{
		Upload:     utils.UploadConfig{MinFiles: 1},
		Allocation: utils.AllocationConfig{PNRMarker: opts.Marker},
	}
	service := usecase.NewAllocationService(config, log)

	var result *response.AllocationResponse
	if opts.JSON != "" {
		result, err = allocateDocument(ctx, service, opts.JSON)
	} else {
		result, err = allocateFiles(ctx, service, opts.Files)
	}
	if err != nil {
		return err
	}

	if err := writeResult(opts.Out, stdout, result); err != nil {
		return fmt.Errorf("write result failed: %w", err)
	}
	fmt.Fprintf(stderr, "%s: %d of %d PNRs assigned, %d seats on %d flights\n",
		result.Label, result.Summary.Assigned, result.Summary.PNRs,
		result.Summary.SeatsAssigned, result.Summary.FlightsUsed)
	return nil
}

func allocateDocument(ctx context.Context, service usecase.AllocationService, path string) (*response.AllocationResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document failed: %w", err)
	}
	defer f.Close()

	batch, err := ingest.ParseJSON(f)
	if err != nil {
		return nil, fmt.Errorf("load %s failed: %w", path, err)
	}
	return service.Allocate(ctx, request.NewAllocationRequest(batch.Flights, batch.PNRs))
}

func allocateFiles(ctx context.Context, service usecase.AllocationService, paths []string) (*response.AllocationResponse, error) {
	files := make([]request.UploadFile, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input failed: %w", err)
		}
		defer f.Close()
		files = append(files, request.UploadFile{Name: filepath.Base(path), Content: f})
	}
	return service.AllocateUploads(ctx, files)
}

func writeResult(path string, stdout io.Writer, result *response.AllocationResponse) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" {
		_, err = stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
