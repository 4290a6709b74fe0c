// Package krpcv1 holds the protobuf messages and gRPC bindings of the
// krpc.v1.LogService API defined under proto/.
package krpcv1

//go:generate protoc -I ../../../proto --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative krpc/v1/log_service.proto
