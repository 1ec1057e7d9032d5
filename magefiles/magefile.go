//go:build mage

// Package main provides build targets for the cafe project using Mage.
//
// Usage:
//
//	mage build          Compile the cafe binary to bin/
//	mage test:all       Run all tests
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Run all tests and write coverage.out
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install cafe to GOPATH/bin
//	mage stats          Print Go LOC split by production and test code
package main

const (
	binGo      = "go"
	binaryName = "cafe"
	binaryDir  = "bin"
	cmdDir     = "./cmd/cafe"
	modulePath = "github.com/mesh-intelligence/cafe"
)
