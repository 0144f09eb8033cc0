package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const CmdRoot = "sharepicture"

func prepareLogger(verbose bool) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := config.Build()

	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to produce a logger: %s\n", err.Error())
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
}

// Main running function
func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)

	// Errors are reported by the commands themselves, we only need to exit
	// with a non-0 status
	if cmd.Execute() != nil {
		_ = zap.L().Sync()
		os.Exit(1)
	}
}
