package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/apriori/backend/pkg/logger"
	"github.com/apriori/backend/services/sso/entity"
	"github.com/apriori/backend/services/sso/storage/postgres/ent"
	"github.com/apriori/backend/services/sso/storage/postgres/ent/user"
)

func (s *storage) CreateUser(ctx context.Context, req *entity.CreateUserRequest) (*entity.User, error) {
	log := logger.FromContext(ctx)

	orgUUID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse organization id: %w", err)
	}

	entUser, err := s.User.Create().
		SetEmail(req.Email).
		SetUsername(req.Username).
		SetFullName(req.FullName).
		SetPasswordHash(req.PasswordHash).
		SetRole(user.Role(req.Role)).
		SetOrganizationID(orgUUID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, entity.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	log.Debug("created user", "user_id", entUser.ID, "role", entUser.Role)

	return makeUser(entUser, req.OrganizationID), nil
}

func (s *storage) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	entUser, err := s.User.Query().
		Where(user.Email(email)).
		WithOrganization().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return makeUser(entUser, organizationID(entUser)), nil
}

func (s *storage) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}

	entUser, err := s.User.Query().
		Where(user.ID(uid)).
		WithOrganization().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return makeUser(entUser, organizationID(entUser)), nil
}

func organizationID(entUser *ent.User) string {
	if entUser.Edges.Organization == nil {
		return ""
	}
	return entUser.Edges.Organization.ID.String()
}

func makeUser(entUser *ent.User, organizationID string) *entity.User {
	return &entity.User{
		ID:             entUser.ID.String(),
		Email:          entUser.Email,
		Username:       entUser.Username,
		FullName:       entUser.FullName,
		Role:           string(entUser.Role),
		OrganizationID: organizationID,
		Password:       entUser.PasswordHash,
		CreatedAt:      entUser.CreatedAt,
	}
}
