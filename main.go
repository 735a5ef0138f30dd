package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Mohamed-68/pnl-report/cmd/check"
	"github.com/Mohamed-68/pnl-report/cmd/extract"
	"github.com/Mohamed-68/pnl-report/cmd/report"
	"github.com/Mohamed-68/pnl-report/cmd/root"
	"github.com/Mohamed-68/pnl-report/cmd/summary"
	"github.com/Mohamed-68/pnl-report/internal/config"
)

func init() {
	// Load environment variables silently first, then configure the global
	// log level before any logger is created.
	loadEnvSilently()
	logrus.SetLevel(configureLogLevel())

	root.Init()

	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(check.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel resolves the log level from the environment, defaulting
// to info when unset or unparseable.
func configureLogLevel() logrus.Level {
	logLevelStr := config.GetEnv("LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
