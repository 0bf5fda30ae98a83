package main

import (
	"fmt"
	"os"

	"quoteportal/internal/cli"
	"quoteportal/internal/portal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err == nil {
		zap.ReplaceGlobals(log)
		defer func() { _ = log.Sync() }()
	}

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", portal.Message(err))
		os.Exit(1)
	}
}
