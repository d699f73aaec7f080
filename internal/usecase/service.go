package usecase

import (
	"flight-allocation/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Allocation AllocationService
}

func NewService(config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Allocation: NewAllocationService(config, log),
	}
}
