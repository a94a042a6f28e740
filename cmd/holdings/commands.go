package main

import (
	"flag"
	"fmt"
	"os"

	"wallet/src/config"
	"wallet/src/utils"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var commands = []subcommands.Command{
	&importCmd{},
	&summaryCmd{},
}

var settingsDir = flag.String("settings", "./settings", "directory holding appsettings.yaml")

func loadConfig() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig(*settingsDir)
	if err != nil {
		return nil, nil, err
	}
	logger := utils.NewLogger(utils.ParseLevel(cfg.Logging.Level), cfg.Logging.ToFile, cfg.Logging.FilePath)
	logger.SetOutput(os.Stderr)
	return cfg, logger, nil
}

func printMarkdown(md string) {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

func fail(err error, status subcommands.ExitStatus) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return status
}
