// Package showpb holds the generated protobuf and gRPC code for
// proto/showrank/v1/show_service.proto.
package showpb

//go:generate protoc -I ../../../proto --go_out=. --go_opt=module=showrank/pkg/grpc/showpb --go-grpc_out=. --go-grpc_opt=module=showrank/pkg/grpc/showpb showrank/v1/show_service.proto
