package server

import (
	"context"

	"google.golang.org/grpc"

	config "github.com/apriori/backend/config/sso"
	"github.com/apriori/backend/services/sso/entity"
	"github.com/apriori/backend/services/sso/usecase"
	pb "github.com/apriori/backend/specs/proto/sso"
)

type Server struct {
	pb.UnimplementedSsoServiceServer

	cfg     *config.Config
	usecase usecase.Usecase
}

func NewServerOptions(cfg *config.Config, usecase usecase.Usecase) *Server {
	return &Server{
		cfg:     cfg,
		usecase: usecase,
	}
}

func (s *Server) NewServer() (*grpc.Server, error) {
	srv := grpc.NewServer()
	pb.RegisterSsoServiceServer(srv, s)

	return srv, nil
}

func (s *Server) Login(ctx context.Context, req *pb.LoginReq) (*pb.LoginResp, error) {
	result, err := s.usecase.Login(ctx, &entity.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return &pb.LoginResp{
		Token:        result.Token,
		User:         makeUserPb(result.User),
		Organization: makeOrganizationPb(result.Organization),
	}, nil
}

func (s *Server) Register(ctx context.Context, req *pb.RegisterReq) (*pb.RegisterResp, error) {
	result, err := s.usecase.Register(ctx, &entity.RegisterRequest{
		Email:            req.Email,
		Username:         req.Username,
		Password:         req.Password,
		FullName:         req.FullName,
		OrganizationName: req.OrganizationName,
	})
	if err != nil {
		return nil, err
	}

	return &pb.RegisterResp{
		Token:        result.Token,
		User:         makeUserPb(result.User),
		Organization: makeOrganizationPb(result.Organization),
	}, nil
}

func (s *Server) GetUser(ctx context.Context, req *pb.GetUserReq) (*pb.GetUserResp, error) {
	user, err := s.usecase.GetUser(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	return &pb.GetUserResp{User: makeUserPb(user)}, nil
}

func (s *Server) GetOrganization(ctx context.Context, req *pb.GetOrganizationReq) (*pb.GetOrganizationResp, error) {
	org, err := s.usecase.GetOrganization(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	return &pb.GetOrganizationResp{Organization: makeOrganizationPb(org)}, nil
}

func (s *Server) HealthCheck(ctx context.Context, req *pb.HealthCheckReq) (*pb.HealthCheckResp, error) {
	return &pb.HealthCheckResp{Status: true}, nil
}

func makeUserPb(user *entity.User) *pb.User {
	return &pb.User{
		Id:             user.ID,
		Email:          user.Email,
		Username:       user.Username,
		FullName:       user.FullName,
		Role:           user.Role,
		OrganizationId: user.OrganizationID,
	}
}

func makeOrganizationPb(org *entity.Organization) *pb.Organization {
	return &pb.Organization{
		Id:     org.ID,
		Name:   org.Name,
		Slug:   org.Slug,
		Domain: org.Domain,
	}
}
