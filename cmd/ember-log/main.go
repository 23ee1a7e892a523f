// Command ember-log views and summarises Ember+ protocol capture files.
//
// Capture files are written by a consumer or provider configured with a
// log.FileLogger.
//
// Usage:
//
//	ember-log <command> [flags] <file.elog>
//
// Commands:
//
//	view     print events in readable form
//	filter   copy matching events to a new file
//	stats    print event counts
//
// Examples:
//
//	ember-log view --layer tree session.elog
//	ember-log filter --role provider -o provider.elog session.elog
//	ember-log stats session.elog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ember-protocol/ember-go/cmd/ember-log/commands"
)

const usage = `ember-log - Ember+ protocol capture viewer

Usage:
  ember-log <command> [flags] <file.elog>

Commands:
  view     print events in readable form
  filter   copy matching events to a new file
  stats    print event counts

Use "ember-log <command> -help" for the flags of a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "view":
		err = runView(args)
	case "filter":
		err = runFilter(args)
	case "stats":
		err = runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// filterFlags registers the event selection flags shared by view and filter.
func filterFlags(fs *flag.FlagSet) *commands.FilterOptions {
	var o commands.FilterOptions
	fs.StringVar(&o.ConnID, "conn-id", "", "connection ID")
	fs.StringVar(&o.Layer, "layer", "", "layer (codec, tree)")
	fs.StringVar(&o.Direction, "direction", "", "direction (in, out)")
	fs.StringVar(&o.Category, "category", "", "category (message, merge, error)")
	fs.StringVar(&o.Role, "role", "", "local role (consumer, provider)")
	fs.StringVar(&o.TimeStart, "time-start", "", "first time to include (RFC3339)")
	fs.StringVar(&o.TimeEnd, "time-end", "", "first time to exclude (RFC3339)")
	return &o
}

func parseArgs(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return "", fmt.Errorf("capture file path required")
	}
	return fs.Arg(0), nil
}

func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	opts := filterFlags(fs)
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	return commands.RunView(path, *opts, os.Stdout)
}

func runFilter(args []string) error {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	opts := filterFlags(fs)
	output := fs.String("o", "", "output file (required)")
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if *output == "" {
		return fmt.Errorf("output file (-o) required")
	}
	n, err := commands.RunFilter(path, *output, *opts)
	if err != nil {
		return err
	}
	fmt.Printf("Filtered %d events to %s\n", n, *output)
	return nil
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	path, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	return commands.RunStats(path, os.Stdout)
}
