// Package flagx lets several independent flag sets share os.Args: each one
// picks out only the flags it owns and ignores the rest.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// flagName strips the leading dashes, so "-c" and "--c" name the same flag.
func flagName(arg string) string {
	return strings.TrimLeft(arg, "-")
}

// FilterArgs returns the subset of args that belongs to the flags named in
// allowed, together with their values.
//
// Names in allowed may carry one or two leading dashes; both spellings on
// the command line match. Values are taken either inline ("-c=conf.json") or
// from the following argument when it does not itself look like a flag.
// The result is never nil.
func FilterArgs(args []string, allowed []string) []string {
	names := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		names[flagName(f)] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" || arg == "--" {
			continue
		}

		name, _, inline := strings.Cut(arg, "=")
		if _, ok := names[flagName(name)]; !ok {
			continue
		}
		filtered = append(filtered, arg)

		if !inline && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// ConfigPath extracts the JSON config file path given via -c or -config.
// The last occurrence wins; without one it returns "".
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

// JsonConfigFlags is ConfigPath over the process arguments.
func JsonConfigFlags() string {
	return ConfigPath(os.Args[1:])
}
