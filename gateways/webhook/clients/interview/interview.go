package interview

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	config "github.com/apriori/backend/config/webhook"
	pb "github.com/apriori/backend/specs/proto/interview"
)

type Client struct {
	conn *grpc.ClientConn
	api  pb.InterviewServiceClient
}

func New(cfg *config.ServiceConfig) (*Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Url, cfg.Port)
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to interview service: %w", err)
	}

	return &Client{
		conn: conn,
		api:  pb.NewInterviewServiceClient(conn),
	}, nil
}

func (c *Client) IngestSubmission(ctx context.Context, req *pb.IngestSubmissionReq) (*pb.IngestSubmissionResp, error) {
	return c.api.IngestSubmission(ctx, req)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
