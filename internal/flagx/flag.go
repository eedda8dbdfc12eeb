// Package flagx lets several parsers share one command line: each picks out
// only the flags its FlagSet defines.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the arguments of args that belong to flags defined on
// fs, with their values, in their original order. Everything else (flags of
// other parsers, positional arguments) is dropped, so fs.Parse never sees an
// unknown flag. Both -name and --name spellings are recognised, with the
// value either attached (-name=value) or as the next argument. A bare "--"
// ends flag processing.
func FilterArgs(args []string, fs *flag.FlagSet) []string {
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		name, attached, ok := splitFlag(arg)
		if !ok || fs.Lookup(name) == nil {
			continue
		}
		filtered = append(filtered, arg)

		if attached || i+1 >= len(args) {
			continue
		}
		// the next token is the value unless it is itself a flag
		if next := args[i+1]; !strings.HasPrefix(next, "-") {
			filtered = append(filtered, next)
			i++
		}
	}

	return filtered
}

// splitFlag reports the flag name in arg and whether its value is attached
// with '='. ok is false for anything that is not a flag.
func splitFlag(arg string) (name string, attached bool, ok bool) {
	name = strings.TrimPrefix(arg, "-")
	name = strings.TrimPrefix(name, "-")
	if name == arg || name == "" || strings.HasPrefix(name, "-") {
		return "", false, false
	}
	name, _, attached = strings.Cut(name, "=")
	return name, attached, name != ""
}

// JsonConfigFlags returns the settings file named by -c or -config in args,
// or "" when neither is present. Other arguments are ignored.
func JsonConfigFlags(args []string) string {
	var config string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config, "config", "", "Path to settings file")
	fs.StringVar(&config, "c", "", "Path to settings file (short)")
	_ = fs.Parse(FilterArgs(args, fs))

	return config
}
