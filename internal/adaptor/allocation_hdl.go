package adaptor

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"flight-allocation/internal/dto/request"
	"flight-allocation/internal/usecase"
	"flight-allocation/pkg/utils"

	"go.uber.org/zap"
)

const uploadField = "files"

type AllocationHandler struct {
	service   usecase.AllocationService
	marker    string
	maxUpload int64
	minFiles  int
	log       *zap.Logger
}

func NewAllocationHandler(service usecase.AllocationService, config *utils.Config, log *zap.Logger) *AllocationHandler {
	return &AllocationHandler{
		service:   service,
		marker:    config.Allocation.PNRMarker,
		maxUpload: config.Upload.MaxSizeMB << 20,
		minFiles:  config.Upload.MinFiles,
		log:       log.With(zap.String("handler", "allocation")),
	}
}

// UploadForm handles GET /
func (h *AllocationHandler) UploadForm(w http.ResponseWriter, r *http.Request) {
	if err := render(w, "upload", map[string]string{"Marker": h.marker}); err != nil {
		h.log.Error("Failed to render upload form", zap.Error(err))
		utils.ResponseText(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Upload handles POST /upload and renders the allocation view.
func (h *AllocationHandler) Upload(w http.ResponseWriter, r *http.Request) {
	files, cleanup, err := h.readUploads(w, r)
	defer cleanup()
	if err != nil {
		h.handleViewError(w, err, "upload")
		return
	}

	result, err := h.service.AllocateUploads(r.Context(), files)
	if err != nil {
		h.handleViewError(w, err, "allocate uploads")
		return
	}

	if err := render(w, "allocation", result); err != nil {
		h.log.Error("Failed to render allocation", zap.Error(err), zap.String("run_id", result.RunID))
		utils.ResponseText(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateAllocation handles POST /api/allocations
func (h *AllocationHandler) CreateAllocation(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	var req request.AllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ResponseTooLarge(w, "Request body too large")
			return
		}
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Allocate(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create allocation")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// CreateAllocationFromCSV handles POST /api/allocations/csv
func (h *AllocationHandler) CreateAllocationFromCSV(w http.ResponseWriter, r *http.Request) {
	files, cleanup, err := h.readUploads(w, r)
	defer cleanup()
	if err != nil {
		h.handleServiceError(w, err, "upload")
		return
	}

	result, err := h.service.AllocateUploads(r.Context(), files)
	if err != nil {
		h.handleServiceError(w, err, "allocate uploads")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// readUploads opens every file of the multipart "files" field. The returned
// cleanup closes them and drops temporary files; it is safe to call on error.
func (h *AllocationHandler) readUploads(w http.ResponseWriter, r *http.Request) ([]request.UploadFile, func(), error) {
	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
		if r.MultipartForm != nil {
			r.MultipartForm.RemoveAll()
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, cleanup, errUploadTooLarge
		}
		return nil, cleanup, usecase.ErrNotEnoughFiles
	}

	headers := r.MultipartForm.File[uploadField]
	if len(headers) < h.minFiles {
		return nil, cleanup, usecase.ErrNotEnoughFiles
	}

	files := make([]request.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, cleanup, err
		}
		opened = append(opened, f)
		files = append(files, request.UploadFile{Name: fh.Filename, Content: f})
	}

	return files, cleanup, nil
}

var errUploadTooLarge = errors.New("upload too large")

// handleViewError answers the browser upload flow in plain text.
func (h *AllocationHandler) handleViewError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotEnoughFiles):
		h.log.Warn(operation+" failed - not enough files", zap.Error(err))
		utils.ResponseText(w, http.StatusBadRequest, "Choose files.")

	case errors.Is(err, errUploadTooLarge):
		h.log.Warn(operation+" failed - too large", zap.Error(err))
		utils.ResponseText(w, http.StatusRequestEntityTooLarge, "Upload too large.")

	case isClientError(err):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseText(w, http.StatusBadRequest, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseText(w, http.StatusInternalServerError, "Internal server error")
	}
}

// handleServiceError handles errors untuk allocation operations
func (h *AllocationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotEnoughFiles):
		h.log.Warn(operation+" failed - not enough files",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Choose files.", nil)

	case errors.Is(err, errUploadTooLarge):
		h.log.Warn(operation+" failed - too large",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseTooLarge(w, "Upload too large")

	case isClientError(err):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func isClientError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "validation failed") || strings.Contains(msg, "invalid")
}
