package pkg

import (
	"github.com/rs/zerolog/log"

	"genestats/pkg/io"
)

func logWarnings(file string, warnings []io.Warning) {
	for _, warning := range warnings {
		log.Warn().Str("File", file).Int("Line", warning.Line).Msg(warning.Message)
	}
}
