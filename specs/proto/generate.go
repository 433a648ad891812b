// Package proto holds the gRPC contracts between the gateways and the
// services. Generated code lives in per-service subpackages.
package proto

//go:generate protoc --go_out=../.. --go_opt=module=github.com/apriori/backend --go-grpc_out=../.. --go-grpc_opt=module=github.com/apriori/backend sso.proto interview.proto
