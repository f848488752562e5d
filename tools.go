//go:build tools
// +build tools

// Package tools pins the code generators run by go generate (mockgen).
package intent_lab

import (
	_ "go.uber.org/mock/mockgen"
)
