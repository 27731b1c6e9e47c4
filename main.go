package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/miosa/osa-biglist/app"
	"github.com/miosa/osa-biglist/config"
	"github.com/miosa/osa-biglist/style"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "", "Path to the settings file (default <profile>/biglist.toml)")
	profileFlag := flag.String("profile", "", "Named profile for state isolation (~/.osa/profiles/<name>)")
	themeFlag := flag.String("theme", "", "Color theme (dark, light, catppuccin, tokyo-night)")
	columnsFlag := flag.Int("columns", 0, "Items per row (overrides the settings file)")
	debugFlag := flag.Bool("debug", false, "Write a debug log to <profile>/biglist.log")
	saveFlag := flag.Bool("save-config", false, "Write the effective settings and exit")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.BoolVar(showVersion, "V", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("biglist %s\n", version)
		os.Exit(0)
	}

	home, _ := os.UserHomeDir()
	profileDir := filepath.Join(home, ".osa")
	if *profileFlag != "" {
		profileDir = filepath.Join(home, ".osa", "profiles", *profileFlag)
	}

	path := *configFlag
	if path == "" {
		path = config.Path(profileDir)
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "biglist: %v\n", err)
		os.Exit(1)
	}
	if *columnsFlag > 0 {
		cfg.View.Columns = *columnsFlag
	}
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}

	if *saveFlag {
		if err := config.Save(path, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "biglist: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	// A TUI owns stdout, so logs go to a file or nowhere.
	if *debugFlag || os.Getenv("BIGLIST_DEBUG") != "" {
		if err := os.MkdirAll(profileDir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "biglist: %v\n", err)
			os.Exit(1)
		}
		f, err := tea.LogToFile(filepath.Join(profileDir, "biglist.log"), "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "biglist: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetFlags(log.Ltime | log.Lshortfile)
	} else {
		log.SetOutput(io.Discard)
	}

	// Explicit theme wins; otherwise follow the terminal background.
	if cfg.Theme == "" || !style.SetTheme(cfg.Theme) {
		if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
			style.SetTheme("dark")
		} else {
			style.SetTheme("light")
		}
	}

	m, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "biglist: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "biglist: %v\n", err)
		os.Exit(1)
	}
}
