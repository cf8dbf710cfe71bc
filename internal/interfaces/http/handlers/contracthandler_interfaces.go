package handlers

import (
	"context"

	contractdto "github.com/adagency-io/adagency/internal/application/contract/dto"
)

type contractService interface {
	List(ctx context.Context) ([]*contractdto.ContractResponse, error)
	Get(ctx context.Context, id uint) (*contractdto.ContractResponse, error)
	Create(ctx context.Context, cmd contractdto.ContractCommand) (*contractdto.ContractResponse, error)
	Update(ctx context.Context, id uint, cmd contractdto.ContractCommand) (*contractdto.ContractResponse, error)
	Delete(ctx context.Context, id uint) (*contractdto.ContractResponse, error)
}

type activeContractCounter interface {
	ActiveContractCount(ctx context.Context) (int64, error)
}
