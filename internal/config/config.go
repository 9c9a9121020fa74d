// Package config resolves command-line flags and environment into the
// settings for a single scan.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"findbackend/internal/model"
	"findbackend/internal/scan"
)

const (
	// DefaultRoot is the scan root used when nothing else supplies one.
	DefaultRoot = `c:\DBMS\LogisticsTracker`

	// RootEnvVar names the environment variable consulted for the scan root.
	RootEnvVar = "FINDBACKEND_ROOT"
)

type Config struct {
	Root     string
	Excludes []string
	Ignore   []string

	JSON    bool
	TUI     bool
	NoColor bool
	Verbose bool
	Version bool
	Help    bool

	flags *pflag.FlagSet
}

// Load parses args (without the program name). Root precedence is:
// positional argument, --root, FINDBACKEND_ROOT from the process
// environment, FINDBACKEND_ROOT from --env-file, DefaultRoot.
func Load(args []string, stderr io.Writer) (*Config, error) {
	cfg := &Config{}
	fs := pflag.NewFlagSet("findbackend", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	cfg.flags = fs

	var root, envFile string
	fs.StringVarP(&root, "root", "r", "", "Directory to scan (default $"+RootEnvVar+" or "+DefaultRoot+")")
	fs.StringSliceVarP(&cfg.Excludes, "exclude", "x", scan.DefaultExcludes, "Prune directories whose path contains this text (repeatable)")
	fs.StringArrayVarP(&cfg.Ignore, "ignore", "i", nil, "Skip paths matching this glob, relative to the root (repeatable)")
	fs.StringVar(&envFile, "env-file", "", "Read "+RootEnvVar+" from this dotenv file")
	fs.BoolVarP(&cfg.JSON, "json", "j", false, "Output results as JSON")
	fs.BoolVarP(&cfg.TUI, "tui", "t", false, "Browse results interactively")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable styled output")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log skipped files and directories to stderr")
	fs.BoolVarP(&cfg.Version, "version", "V", false, "Print version information")
	fs.BoolVarP(&cfg.Help, "help", "h", false, "Show this help message")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one root directory, got %d", fs.NArg())
	}

	for _, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	var fileVars map[string]string
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("reading env file %s: %w", envFile, err)
		}
		fileVars = vars
	}

	cfg.Root = model.ExpandTilde(resolveRoot(fs.Arg(0), root, fileVars))
	return cfg, nil
}

func resolveRoot(arg, flag string, fileVars map[string]string) string {
	if arg != "" {
		return arg
	}
	if flag != "" {
		return flag
	}
	if v := strings.TrimSpace(os.Getenv(RootEnvVar)); v != "" {
		return v
	}
	if v := strings.TrimSpace(fileVars[RootEnvVar]); v != "" {
		return v
	}
	return DefaultRoot
}

// Usage prints the help text to the configured output.
func (c *Config) Usage() {
	c.flags.Usage()
}

func printUsage(fs *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: findbackend [options] [root]\n\n")
	fmt.Fprintf(w, "findbackend scans a project tree for backend server files and port definitions.\n")
	fmt.Fprintf(w, "Directories whose path contains \"mobile\" or \"website\" are skipped by default.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  findbackend ~/src/app           # Print the text report\n")
	fmt.Fprintf(w, "  findbackend --json ~/src/app    # Output results as JSON\n")
	fmt.Fprintf(w, "  findbackend -t -i 'dist/**'     # Browse results, skipping dist/\n")
}
