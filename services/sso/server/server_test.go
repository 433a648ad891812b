package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/apriori/backend/config/sso"
	pb "github.com/apriori/backend/specs/proto/sso"
)

func TestHealthCheck(t *testing.T) {
	srv := NewServerOptions(&config.Config{}, nil)

	resp, err := srv.HealthCheck(context.Background(), &pb.HealthCheckReq{})
	require.NoError(t, err)
	assert.True(t, resp.Status)
}
