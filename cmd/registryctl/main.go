// Package main provides the registryctl tool for inspecting the compiled-in
// protocol registry.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/defikit/registry-go/pkg/registry"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	cmd := "dump"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "--version", "version":
		fmt.Printf("registryctl version %s\n", Version)
	case "dump":
		if err := dump(); err != nil {
			fmt.Fprintf(os.Stderr, "registryctl: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := registry.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "registryctl: invalid registry: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("registry ok")
	default:
		fmt.Fprintf(os.Stderr, "registryctl: unknown command %q\n", cmd)
		fmt.Fprintln(os.Stderr, "usage: registryctl [dump|check|version]")
		os.Exit(2)
	}
}

// dump prints the full registry snapshot as indented JSON.
func dump() error {
	data, err := json.MarshalIndent(registry.TakeSnapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	fmt.Println(string(data))
	return nil
}
