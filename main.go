package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/AaronKutch/awint/config"
	"github.com/AaronKutch/awint/inspect"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	// Command-line flags
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		tuiMode     = flag.Bool("tui", false, "Start the full-screen TUI inspector")
		evalExpr    = flag.String("eval", "", "Evaluate one expression and exit")
		width       = flag.Int("width", 0, "Working bit width (overrides config)")
		radix       = flag.Int("radix", 0, "Display radix 2-36 (overrides config)")
		signedMode  = flag.Bool("signed", false, "Signed interpretation (overrides config)")
		configFile  = flag.String("config", "", "Config file path (default: platform config dir)")
	)

	flag.Parse()

	// Show version
	if *showVersion {
		fmt.Printf("awint inspector %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	// Load configuration
	var cfg *config.Config
	var err error
	if *configFile != "" {
		cfg, err = config.LoadFrom(*configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides
	if *width > 0 {
		cfg.Repl.DefaultWidth = *width
	}
	if *radix > 0 {
		cfg.Display.Radix = *radix
	}
	if *signedMode {
		cfg.Repl.DefaultSigned = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session := inspect.NewSession(cfg)

	// One-shot evaluation
	if *evalExpr != "" {
		out, err := session.Eval(*evalExpr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
		os.Exit(0)
	}

	// Full-screen TUI
	if *tuiMode {
		tui := inspect.NewTUI(session, cfg)
		if err := tui.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Line-oriented REPL on stdin
	runRepl(session)
}

// runRepl reads expressions from stdin until EOF or quit
func runRepl(session *inspect.Session) {
	fmt.Printf("awint inspector %s; type help for commands, quit to exit\n", Version)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[w%d] > ", session.Width)
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return
		}
		out, err := session.Eval(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
}
