package common

import (
	"fmt"
	"strings"
)

const devVersion = "0.0.1-dev"

// Version is stamped by release builds:
//
//	go build -ldflags "-X github.com/monkeys-engine/monkeys/internal/codegen/common.Version=v1.2.0" ./cmd/monkeys
var Version = ""

// GetVersion returns the generator version written into every generated file
// header, without the leading "v". Unstamped builds report devVersion; a
// stamp that is not x.y.z[-suffix] is an error so a broken release pipeline
// does not go unnoticed.
func GetVersion() (string, error) {
	if Version == "" {
		return devVersion, nil
	}
	v := strings.TrimPrefix(Version, "v")
	core, _, _ := strings.Cut(v, "-")
	if strings.Count(core, ".") != 2 {
		return "", fmt.Errorf("version %q is not of the form x.y.z", Version)
	}
	return v, nil
}
