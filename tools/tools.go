//go:build tools
// +build tools

package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/google/wire/cmd/wire"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/rakyll/hey"
	_ "github.com/wadey/gocovmerge"
	_ "go.uber.org/mock/gomock"
	_ "mvdan.cc/gofumpt"
)
