package adaptor

import (
	"flight-allocation/internal/usecase"
	"flight-allocation/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Allocation *AllocationHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Allocation: NewAllocationHandler(service.Allocation, config, log),
	}
}
