package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"rowstore/pkg/database"
	"rowstore/pkg/logging"
	"rowstore/pkg/repl"
	"rowstore/pkg/ui"
)

type Configuration struct {
	DatabaseName string
	LogLevel     string
	LogFile      string
	LogFormat    string
	TUI          bool
}

func main() {
	os.Exit(run())
}

func run() int {
	config := parseArguments()

	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := logging.Init(logging.Config{
		Level:      level,
		OutputPath: config.LogFile,
		Format:     config.LogFormat,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		return 1
	}
	defer logging.Close()

	db := database.NewDatabase(config.DatabaseName)
	logging.Info("database opened", "name", config.DatabaseName, "tui", config.TUI)

	if config.TUI {
		err = ui.Run(db)
	} else {
		err = repl.New(db, os.Stdin, os.Stdout).Run()
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, repl.ErrInputClosed):
		return 1
	default:
		logging.WithError(err).Error("fatal error")
		return 1
	}
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var config Configuration

	flag.StringVar(&config.DatabaseName, "db", "main", "Database name")
	flag.StringVar(&config.LogLevel, "log-level", string(logging.LevelWarn), "Log level: DEBUG, INFO, WARN or ERROR")
	flag.StringVar(&config.LogFile, "log-file", "", "Log file path (default stderr)")
	flag.StringVar(&config.LogFormat, "log-format", "text", "Log format: text or json")
	flag.BoolVar(&config.TUI, "tui", false, "Run the full-screen terminal interface")

	flag.Parse()

	return config
}
