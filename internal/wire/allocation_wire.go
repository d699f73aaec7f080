package wire

import (
	"flight-allocation/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAllocation(r chi.Router, allocationHandler *adaptor.AllocationHandler) {
	// ==================== BROWSER ROUTES ====================
	// GET / - Upload form
	r.Get("/", allocationHandler.UploadForm)

	// POST /upload - Multipart "files" (flights + PNRs), renders the allocation
	r.Post("/upload", allocationHandler.Upload)

	// ==================== API ROUTES ====================
	r.Route("/api/allocations", func(r chi.Router) {
		// POST /api/allocations - JSON flights + PNRs
		r.Post("/", allocationHandler.CreateAllocation)

		// POST /api/allocations/csv - Multipart CSV upload, JSON result
		r.Post("/csv", allocationHandler.CreateAllocationFromCSV)
	})
}
