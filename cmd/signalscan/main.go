package main

import (
	"os"

	"github.com/harrison/signalscan/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		cmd.LogFatal(os.Stderr, err)
		os.Exit(1)
	}
}
