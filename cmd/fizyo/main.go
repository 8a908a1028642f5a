package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fiziktedavi/fizyo/pkg/fizyo"
)

type options struct {
	configPath string
	logPath    string
	logLevel   string
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "path to config.toml (default: user config dir)")
	flag.StringVar(&opts.logPath, "log", "", "log file path (overrides config)")
	flag.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fizyo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "fizyo runs the physical-therapy companion screens in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func run(opts options) error {
	app, err := fizyo.New(fizyo.Options{
		ConfigPath:        opts.configPath,
		LogPath:           opts.logPath,
		LogLevel:          opts.logLevel,
		DisableConsoleLog: true,
	})
	if err != nil {
		return err
	}
	defer fizyo.Close()

	_, err = tea.NewProgram(newModel(app), tea.WithAltScreen()).Run()
	return err
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "fizyo: %v\n", err)
		os.Exit(1)
	}
}
