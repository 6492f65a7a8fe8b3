package main

import (
	"github.com/spf13/cobra"
)

// Version can be overridden at build time using ldflags:
// go build -ldflags "-X main.Version=1.0.0"
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "shape-serve",
	Short: "shape-serve - a minimal HTTP/1.1 server",
	Long: `shape-serve answers one HTTP/1.1 request per connection, sequentially,
dispatching on the exact request path. It can also decode a raw request and
print its structure.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("shape-serve version {{.Version}}\n")
}
