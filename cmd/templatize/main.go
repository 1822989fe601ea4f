package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/templatize/internal/cli"
	"github.com/arthur-debert/templatize/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		p := style.NewPrinter(os.Stderr)
		_, _ = fmt.Fprintf(os.Stderr, "%s %v\n", p.Error("Error:"), err)
		os.Exit(1)
	}
}
