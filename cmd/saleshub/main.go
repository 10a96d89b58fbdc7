package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"saleshub-cli/internal/cli"
	"saleshub-cli/internal/model"
)

// directLookup returns the subcommand path for a short reference such as dept-7.
func directLookup(s string) ([]string, bool) {
	kind, id, ok := model.ParseRef(s)
	if !ok {
		return nil, false
	}
	group := "departments"
	if kind == "seller" {
		group = "sellers"
	}
	return []string{group, "show", strconv.FormatInt(id, 10)}, true
}

// rewriteDirectLookupArgs makes `saleshub dept-7` behave like `saleshub departments show 7`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags often come first (`saleshub --dir x dept-7`),
// so the first positional token is located by skipping known flags.
func rewriteDirectLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":       true,
		"--format":    true,
		"--log-level": true,
		"--log-file":  true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	rewrite := func(i int) []string {
		path, ok := directLookup(argv[i])
		if !ok {
			return argv
		}
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:i]...)
		out = append(out, path...)
		out = append(out, argv[i+1:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// The next token, if any, is the first positional.
			if i+1 < len(argv) {
				return rewrite(i + 1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++
			}
			continue
		}
		return rewrite(i)
	}
	return argv
}

func main() {
	os.Args = rewriteDirectLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
