package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	config "github.com/apriori/backend/config/sso"
	"github.com/apriori/backend/pkg/jwt"
	"github.com/apriori/backend/services/sso/entity"
)

type fakeStorage struct {
	users   map[string]*entity.User
	byEmail map[string]string
	orgs    map[string]*entity.Organization
	bySlug  map[string]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		users:   make(map[string]*entity.User),
		byEmail: make(map[string]string),
		orgs:    make(map[string]*entity.Organization),
		bySlug:  make(map[string]string),
	}
}

func (f *fakeStorage) CreateUser(ctx context.Context, req *entity.CreateUserRequest) (*entity.User, error) {
	if _, exists := f.byEmail[req.Email]; exists {
		return nil, entity.ErrEmailTaken
	}

	user := &entity.User{
		ID:             uuid.New().String(),
		Email:          req.Email,
		Username:       req.Username,
		FullName:       req.FullName,
		Role:           req.Role,
		OrganizationID: req.OrganizationID,
		Password:       req.PasswordHash,
		CreatedAt:      time.Now(),
	}
	f.users[user.ID] = user
	f.byEmail[user.Email] = user.ID
	return user, nil
}

func (f *fakeStorage) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return f.users[id], nil
}

func (f *fakeStorage) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return user, nil
}

func (f *fakeStorage) CreateOrganization(ctx context.Context, org *entity.Organization) (*entity.Organization, error) {
	stored := *org
	stored.ID = uuid.New().String()
	stored.CreatedAt = time.Now()
	f.orgs[stored.ID] = &stored
	f.bySlug[stored.Slug] = stored.ID
	return &stored, nil
}

func (f *fakeStorage) GetOrganizationBySlug(ctx context.Context, slug string) (*entity.Organization, error) {
	id, ok := f.bySlug[slug]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return f.orgs[id], nil
}

func (f *fakeStorage) GetOrganizationByID(ctx context.Context, id string) (*entity.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return org, nil
}

func newUsecase(stg *fakeStorage) Usecase {
	return New(&config.Config{JWTSecret: "test-secret"}, stg)
}

func TestRegisterCreatesOrganizationAndAdmin(t *testing.T) {
	stg := newFakeStorage()
	u := newUsecase(stg)

	resp, err := u.Register(context.Background(), &entity.RegisterRequest{
		Email:            "alice@acme.io",
		Username:         "alice",
		Password:         "s3cret",
		OrganizationName: "Acme Corp",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	assert.Equal(t, "acme-corp", resp.Organization.Slug)
	assert.Equal(t, resp.Organization.ID, resp.User.OrganizationID)

	userID, err := jwt.ParseUserID(context.Background(), resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
}

func TestRegisterJoinsExistingOrganizationAsMember(t *testing.T) {
	stg := newFakeStorage()
	u := newUsecase(stg)

	first, err := u.Register(context.Background(), &entity.RegisterRequest{
		Email:            "alice@acme.io",
		Password:         "s3cret",
		OrganizationName: "Acme Corp",
	})
	require.NoError(t, err)

	second, err := u.Register(context.Background(), &entity.RegisterRequest{
		Email:            "bob@acme.io",
		Password:         "s3cret",
		OrganizationName: "acme corp",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleMember, second.User.Role)
	assert.Equal(t, first.Organization.ID, second.Organization.ID)
	assert.Len(t, stg.orgs, 1)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	u := newUsecase(newFakeStorage())

	_, err := u.Register(context.Background(), &entity.RegisterRequest{
		Email:            "alice@acme.io",
		Password:         "s3cret",
		OrganizationName: "Acme",
	})
	require.NoError(t, err)

	_, err = u.Register(context.Background(), &entity.RegisterRequest{
		Email:            "alice@acme.io",
		Password:         "other",
		OrganizationName: "Acme",
	})
	require.ErrorIs(t, err, entity.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	stg := newFakeStorage()
	u := newUsecase(stg)

	reg, err := u.Register(context.Background(), &entity.RegisterRequest{
		Email:            "alice@acme.io",
		Password:         "s3cret",
		OrganizationName: "Acme",
	})
	require.NoError(t, err)

	resp, err := u.Login(context.Background(), &entity.LoginRequest{
		Email:    "alice@acme.io",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, reg.User.ID, resp.User.ID)
	assert.Equal(t, reg.Organization.ID, resp.Organization.ID)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	stg := newFakeStorage()
	u := newUsecase(stg)

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)
	org, err := stg.CreateOrganization(context.Background(), &entity.Organization{Name: "Acme", Slug: "acme"})
	require.NoError(t, err)
	_, err = stg.CreateUser(context.Background(), &entity.CreateUserRequest{
		Email:          "alice@acme.io",
		PasswordHash:   string(hash),
		Role:           entity.RoleAdmin,
		OrganizationID: org.ID,
	})
	require.NoError(t, err)

	_, err = u.Login(context.Background(), &entity.LoginRequest{Email: "alice@acme.io", Password: "wrong"})
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)

	_, err = u.Login(context.Background(), &entity.LoginRequest{Email: "nobody@acme.io", Password: "right"})
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "acme-corp", Slugify("Acme Corp"))
	assert.Equal(t, "acme-corp", Slugify("  Acme -- Corp!  "))
	assert.Equal(t, "r-d-2024", Slugify("R&D 2024"))
	assert.Equal(t, "", Slugify("---"))
}
