// Package toolv1 holds the generated gRPC bindings for the tool-server
// gateway protocol defined in toolserver.proto.
package toolv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative toolserver.proto
