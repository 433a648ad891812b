package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/apriori/backend/services/sso/entity"
	"github.com/apriori/backend/services/sso/storage/postgres/ent"
	"github.com/apriori/backend/services/sso/storage/postgres/ent/organization"
)

func (s *storage) CreateOrganization(ctx context.Context, org *entity.Organization) (*entity.Organization, error) {
	entOrg, err := s.Organization.Create().
		SetName(org.Name).
		SetSlug(org.Slug).
		SetDomain(org.Domain).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return makeOrganization(entOrg), nil
}

func (s *storage) GetOrganizationBySlug(ctx context.Context, slug string) (*entity.Organization, error) {
	entOrg, err := s.Organization.Query().
		Where(organization.Slug(slug)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization by slug: %w", err)
	}

	return makeOrganization(entOrg), nil
}

func (s *storage) GetOrganizationByID(ctx context.Context, id string) (*entity.Organization, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse organization id: %w", err)
	}

	entOrg, err := s.Organization.Get(ctx, uid)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return makeOrganization(entOrg), nil
}

func makeOrganization(entOrg *ent.Organization) *entity.Organization {
	return &entity.Organization{
		ID:        entOrg.ID.String(),
		Name:      entOrg.Name,
		Slug:      entOrg.Slug,
		Domain:    entOrg.Domain,
		CreatedAt: entOrg.CreatedAt,
	}
}
