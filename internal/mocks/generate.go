// Package mocks provides mock implementations for testing the bridge.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the tool-facing interfaces. The mocks are generated using go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockAPI := mocks.NewMockConsoleAPI(ctrl)
//	mockAPI.EXPECT().GetThreat(gomock.Any(), "t-1").Return(threat, nil)
package mocks

// Generate mock for the ConsoleAPI interface from internal/tools.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=console_api_mock.go github.com/target/edr-bridge/internal/tools ConsoleAPI

// Generate mock for the SearchRunner interface from internal/tools.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=search_runner_mock.go github.com/target/edr-bridge/internal/tools SearchRunner
