package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/existflow/ironproject/internal/logger"
	"github.com/existflow/ironproject/internal/output"
	"github.com/spf13/cobra"
)

// newEmitter builds the project emitter from --format/--out, falling back
// to the configured format and stdout. The returned func closes the file.
func newEmitter(cmd *cobra.Command) (*output.Emitter, func(), error) {
	name := appConfig.OutputFormat
	if cmd.Flags().Changed("format") {
		name = outFormat
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = cmd.OutOrStdout()
	closeOut := func() {}
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open output file: %w", err)
		}
		w = f
		closeOut = func() {
			if err := f.Close(); err != nil {
				logger.Warn("Failed to close output file", logger.F("path", outPath), logger.F("error", err))
			}
		}
	}

	return output.NewEmitter(w, format), closeOut, nil
}
