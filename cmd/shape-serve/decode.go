package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-serve/pkg/http"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a raw HTTP request and print its structure",
	Long: `Read a raw HTTP request from file (or stdin when no file or "-" is given),
decode it the way the server does, and print the resulting AST as JSON or YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

var decodeFormat string

func init() {
	decodeCmd.Flags().StringVar(&decodeFormat, "format", string(FormatJSON), "output format (json, yaml)")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	node, err := http.ParseReader(in)
	if err != nil {
		return err
	}

	out, err := formatValue(nodeToValue(node), OutputFormat(decodeFormat))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// openInput returns the named file, or stdin when args is empty or "-".
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// nodeToValue flattens an AST into values encoding/json can marshal.
func nodeToValue(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = nodeToValue(v)
		}
		return m
	case *ast.ArrayDataNode:
		elems := n.Elements()
		out := make([]interface{}, len(elems))
		for i, e := range elems {
			out[i] = nodeToValue(e)
		}
		return out
	case *ast.LiteralNode:
		return n.Value()
	default:
		return fmt.Sprintf("%T", node)
	}
}
