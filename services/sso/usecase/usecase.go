package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	config "github.com/apriori/backend/config/sso"
	"github.com/apriori/backend/pkg/jwt"
	"github.com/apriori/backend/pkg/logger"
	"github.com/apriori/backend/services/sso/entity"
	"github.com/apriori/backend/services/sso/storage"
)

type Usecase interface {
	Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error)
	Register(ctx context.Context, req *entity.RegisterRequest) (*entity.RegisterResponse, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	GetOrganization(ctx context.Context, userID string) (*entity.Organization, error)
}

type usecase struct {
	cfg     *config.Config
	storage storage.Storage
}

func New(cfg *config.Config, storage storage.Storage) Usecase {
	return &usecase{
		cfg:     cfg,
		storage: storage,
	}
}

func (u *usecase) Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error) {
	user, err := u.storage.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	token, err := jwt.Generate(ctx, user.ID, u.cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	org, err := u.storage.GetOrganizationByID(ctx, user.OrganizationID)
	if err != nil {
		return nil, err
	}

	return &entity.LoginResponse{
		Token:        token,
		User:         user,
		Organization: org,
	}, nil
}

// Register creates the user under the organization named in the request.
// An unknown organization slug creates the organization and makes the
// registering user its admin; a known slug joins them as a member.
func (u *usecase) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.RegisterResponse, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" || req.OrganizationName == "" {
		return nil, fmt.Errorf("%w: email, password and organization_name are required", entity.ErrInvalidCredentials)
	}

	role := entity.RoleMember
	slug := Slugify(req.OrganizationName)

	org, err := u.storage.GetOrganizationBySlug(ctx, slug)
	if errors.Is(err, entity.ErrNotFound) {
		org, err = u.storage.CreateOrganization(ctx, &entity.Organization{
			Name: req.OrganizationName,
			Slug: slug,
		})
		if err != nil {
			return nil, err
		}
		role = entity.RoleAdmin
		log.Info("created organization", "organization_id", org.ID, "slug", slug)
	} else if err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := u.storage.CreateUser(ctx, &entity.CreateUserRequest{
		Email:          req.Email,
		Username:       req.Username,
		FullName:       req.FullName,
		PasswordHash:   string(passwordHash),
		Role:           role,
		OrganizationID: org.ID,
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(ctx, user.ID, u.cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	return &entity.RegisterResponse{
		Token:        token,
		User:         user,
		Organization: org,
	}, nil
}

func (u *usecase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	return u.storage.GetUserByID(ctx, userID)
}

func (u *usecase) GetOrganization(ctx context.Context, userID string) (*entity.Organization, error) {
	user, err := u.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return u.storage.GetOrganizationByID(ctx, user.OrganizationID)
}

// Slugify lowercases the name and collapses everything outside [a-z0-9]
// into single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
