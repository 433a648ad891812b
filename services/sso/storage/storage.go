package storage

import (
	"context"

	"github.com/apriori/backend/services/sso/entity"
	"github.com/apriori/backend/services/sso/storage/postgres/ent"
)

type storage struct {
	*ent.Client
}

type Storage interface {
	CreateUser(ctx context.Context, req *entity.CreateUserRequest) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)

	CreateOrganization(ctx context.Context, org *entity.Organization) (*entity.Organization, error)
	GetOrganizationBySlug(ctx context.Context, slug string) (*entity.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*entity.Organization, error)
}

func New(client *ent.Client) Storage {
	return &storage{
		Client: client,
	}
}
