// Command gryphon is a UCI-compatible chess engine.
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/algerbrex/gryphon/internal/config"
	"github.com/algerbrex/gryphon/internal/engineio"
	"github.com/algerbrex/gryphon/internal/uci"
)

func main() {
	log := engineio.NewLogger()
	defer log.Sync()

	opts, err := config.Load("gryphon.toml")
	if err != nil {
		log.Warn("failed to load gryphon.toml, using defaults", zap.Error(err))
	}

	e := uci.New(os.Stdout, log, opts)
	e.Run(os.Stdin)
}
