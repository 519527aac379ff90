package user

import (
	"context"

	"github.com/Heybro1122/ShopHub/internal/model"
)

// Repository resolves identities issued by the external identity provider.
type Repository interface {
	Count(ctx context.Context) (int, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}
