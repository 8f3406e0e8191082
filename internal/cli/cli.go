package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/amirbrooks/tasker-lite/internal/command"
	"github.com/amirbrooks/tasker-lite/internal/config"
	"github.com/amirbrooks/tasker-lite/internal/store"
	"github.com/amirbrooks/tasker-lite/internal/ui"
)

// Exit codes
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitInternal = 10
)

type GlobalFlags struct {
	Root     string
	DataFile string
	LogLevel string
	Verbose  bool
	NoColor  bool
	Help     bool
}

func Run(args []string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	gf, rest, err := extractGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitUsage
	}
	if gf.Help {
		printHelp(stdout)
		return ExitOK
	}

	cfg, err := config.Load(gf.Root)
	if err != nil {
		fmt.Fprintln(stderr, "tasker:", err)
		return ExitInternal
	}
	applyFlags(cfg, gf)

	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "tasker:", err)
		return ExitUsage
	}
	logger.Debug("config resolved", "root", cfg.Root, "data", cfg.DataPath())

	console := ui.NewConsole(stdout, cfg.ColorEnabled())
	session := NewSession(store.Open(cfg.DataPath()), console, logger)

	if len(rest) > 0 {
		return runOnce(session, strings.Join(rest, " "))
	}

	console.Greet()
	var src ui.LineSource = ui.NewLineSource(stdin)
	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		src = promptingSource{LineSource: src, console: console}
	}
	if err := session.Run(src); err != nil {
		logger.Error("reading input", "err", err)
		return ExitInternal
	}
	console.Goodbye()
	return ExitOK
}

func runOnce(session *Session, line string) int {
	_, err := session.Execute(line)
	if err == nil {
		return ExitOK
	}
	session.display.Error(describeError(err))
	if errors.Is(err, store.ErrStorageUnavailable) {
		return ExitInternal
	}
	return ExitUsage
}

type promptingSource struct {
	ui.LineSource
	console *ui.Console
}

func (p promptingSource) ReadLine() (string, error) {
	p.console.Prompt()
	return p.LineSource.ReadLine()
}

func applyFlags(cfg *config.Config, gf GlobalFlags) {
	if gf.DataFile != "" {
		cfg.DataFile = gf.DataFile
	}
	if gf.LogLevel != "" {
		cfg.LogLevel = gf.LogLevel
	}
	if gf.Verbose {
		cfg.LogLevel = "debug"
	}
	if gf.NoColor {
		off := false
		cfg.Color = &off
	}
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "tasker",
	}), nil
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `tasker — interactive task list kept in a flat file

Usage:
  tasker [global flags]               start an interactive session
  tasker [global flags] <command...>  run one command and exit

Global flags:
  --root <path>       Store root (default: ~/.tasker or TASKER_ROOT)
  --file <path>       Task file, relative to root unless absolute (default: tasks.txt)
  --log-level <lvl>   debug|info|warn|error (default: warn)
  --verbose           Same as --log-level debug
  --no-color          Plain output
  --help

`)
	for _, line := range command.HelpLines() {
		fmt.Fprintln(w, line)
	}
}

func extractGlobalFlags(args []string) (GlobalFlags, []string, error) {
	// Allow flags anywhere by scanning and stripping known globals.
	gf := GlobalFlags{}
	out := make([]string, 0, len(args))
	skip := 0

	for i := 0; i < len(args); i++ {
		if skip > 0 {
			skip--
			continue
		}
		a := args[i]
		switch a {
		case "--root", "--file", "--log-level":
			if i+1 >= len(args) {
				return gf, nil, fmt.Errorf("%s requires a value", a)
			}
			v := args[i+1]
			switch a {
			case "--root":
				gf.Root = v
			case "--file":
				gf.DataFile = v
			default:
				gf.LogLevel = v
			}
			skip = 1
		case "--verbose":
			gf.Verbose = true
		case "--no-color":
			gf.NoColor = true
		case "--help", "-h":
			gf.Help = true
		default:
			out = append(out, a)
		}
	}
	return gf, out, nil
}
