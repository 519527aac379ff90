package dashboard

import (
	"context"

	"github.com/Heybro1122/ShopHub/internal/model"
)

type UseCase interface {
	ComputeSnapshot(ctx context.Context) (*model.DashboardSnapshot, error)
}
