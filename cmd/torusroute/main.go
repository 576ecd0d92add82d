// Command torusroute prints a text map with the shortest wrap-around route
// from its entry 'i' to its exit 'O' drawn in.
//
//	torusroute [--legend legend.yaml] [--color auto|always|never] [--log-level level] <map_file>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/torusroute/internal/cli"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run executes the CLI and maps its error to a process exit code.
func run(stdout, stderr io.Writer, args []string) int {
	err := cli.Run(context.Background(), stdout, stderr, args)
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(stderr, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintln(stderr, err)
	return 1
}
