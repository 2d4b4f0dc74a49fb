package main

import (
	"fmt"
	"os"

	"github.com/fieldopshq/fieldops/internal/config"
	"github.com/fieldopshq/fieldops/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fieldops: %v\n", err)
		return 1
	}

	logger, err := logging.Init(logging.Config{
		Enabled:  cfg.Log.Enabled,
		Level:    cfg.Log.Level,
		MaxFiles: cfg.Log.MaxFiles,
		Dir:      cfg.LogDir(),
		Command:  commandName(os.Args),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fieldops: logging disabled: %v\n", err)
		logger = logging.Noop()
	}

	d := newDeps(cfg, logger)
	defer d.Close()

	logger.Debug("startup", "command", commandName(os.Args), "offline", cfg.Offline)
	if err := NewRootCmd(d).Execute(); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "fieldops: %v\n", err)
		return 1
	}
	return 0
}

// commandName extracts the subcommand for log file naming.
func commandName(args []string) string {
	if len(args) < 2 {
		return "root"
	}
	return args[1]
}
