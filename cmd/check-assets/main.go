package main

import (
	"fmt"
	"io"
	"os"

	"github.com/HWxFrank/metadata/cmd/check-assets/commands"
)

func main() {
	commands.Execute()
	os.Exit(run(os.Stdout))
}

// run maps the global validation result to the process exit code and prints
// the final status line. Split from main for testability.
func run(w io.Writer) int {
	switch commands.Result {
	case commands.ValidationFailed:
		fmt.Fprintln(w, commands.FailStyle.Render("Validation failed"))
		return 1
	case commands.ExecutionError:
		return 2
	case commands.ValidationSucceeded:
		fmt.Fprintln(w, commands.PassStyle.Render("Validation succeeded"))
	}

	return 0
}
