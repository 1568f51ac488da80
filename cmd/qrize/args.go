package main

import (
	"flag"
	"strings"
)

// parseArgs parses flags that may be interleaved with positional
// arguments and returns the positionals in order. Everything after
// "--" is positional.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// scanConfigPath finds -config ahead of flag parsing so the file can
// supply flag defaults.
func scanConfigPath(args []string) string {
	path := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return path
		case arg == "-config" || arg == "--config":
			if i+1 < len(args) {
				path = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "-config=") || strings.HasPrefix(arg, "--config="):
			path = strings.SplitN(arg, "=", 2)[1]
		}
	}
	return path
}
