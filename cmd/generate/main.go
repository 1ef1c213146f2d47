package main

import (
	"context"
	"os"

	"prompt-references/cmd/internal/logger"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.Log.Errorf("Error generating references: %v", err)
		os.Exit(1)
	}
}
