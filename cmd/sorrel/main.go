package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sambeau/sorrel/config"
	"github.com/sambeau/sorrel/pkg/sorrel/commands"
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/repl"
	"github.com/sambeau/sorrel/pkg/sorrel/shell"
)

// Version is set at compile time via -ldflags
var Version = "0.3.0"

var (
	// Display flags
	helpFlag        = flag.Bool("h", false, "Show help message")
	helpLongFlag    = flag.Bool("help", false, "Show help message")
	versionFlag     = flag.Bool("V", false, "Show version information")
	versionLongFlag = flag.Bool("version", false, "Show version information")

	// Evaluation flags
	evalFlag     = flag.String("e", "", "Run one pipeline and exit")
	evalLongFlag = flag.String("eval", "", "Run one pipeline and exit")

	// Configuration flags
	configFlag   = flag.String("c", "", "Path to config file")
	logLevelFlag = flag.String("log-level", "", "Log level: debug, info, warn, error")
)

func main() {
	flag.Usage = printHelp
	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}
	if *versionFlag || *versionLongFlag {
		fmt.Printf("sorrel version %s\n", Version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFlag, os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	level := cfg.Logging.Level
	if *logLevelFlag != "" {
		level = *logLevelFlag
	}
	if level != "" {
		parsed, perr := log.ParseLevel(level)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown log level %q\n", level)
			os.Exit(2)
		}
		log.SetLevel(parsed)
	}

	startDir := cfg.StartupDir
	if startDir == "" {
		if wd, werr := os.Getwd(); werr == nil {
			startDir = wd
		} else {
			startDir = "."
		}
	}

	reg := pipeline.NewRegistry()
	commands.RegisterAll(reg)

	fs, err := shell.NewFilesystemShell(startDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	ctx := pipeline.NewContext(reg, shell.Factory{}, fs)

	evalLine := *evalFlag
	if evalLine == "" {
		evalLine = *evalLongFlag
	}
	if evalLine != "" {
		repl.EvalLine(evalLine, "eval", ctx, os.Stdout)
		return
	}

	repl.Start(ctx, os.Stdout, repl.Options{
		HistoryFile: cfg.HistoryPath(os.Getenv),
		Prompt:      cfg.Prompt,
		Version:     Version,
	})
}

func printHelp() {
	fmt.Printf(`sorrel - a structured-data shell, version %s

Usage:
  sorrel                 Start the interactive shell
  sorrel -e "pipeline"   Run one pipeline and exit

Options:
  -e, --eval <line>      Run one pipeline and exit
  -c <path>              Path to config file
  --log-level <level>    Log level: debug, info, warn, error
  -h, --help             Show this help message
  -V, --version          Show version information
`, Version)
}
