//go:generate go run github.com/stubgen-io/stubgen/cmd/stubgen generate

// Package genproto aggregates the generated protobuf stub packages for the
// Cloud Bigtable v1 API surface. The packages beneath it are produced by the
// stubgen tool from the upstream proto definitions and checked in, so
// consumers can build without a Protocol Buffers installation. The
// upstream.yaml file alongside this package records the provenance of the
// current stubs.
package genproto
