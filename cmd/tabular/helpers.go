package main

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tabular/internal/config"
)

const keyListCap = 10

// formatKeyList joins up to keyListCap keys, marking truncation.
func formatKeyList(keys []string) string {
	if len(keys) <= keyListCap {
		return strings.Join(keys, ", ")
	}
	return strings.Join(keys[:keyListCap], ", ") + ", ..."
}

// painter colorizes verdict words when the config and terminal allow it.
type painter struct {
	enabled bool
}

func newPainter(cfg *config.Config, cmd *cobra.Command) painter {
	mode := "auto"
	if cfg != nil {
		mode = cfg.Output.Color
	}
	switch mode {
	case "always":
		return painter{enabled: true}
	case "never":
		return painter{enabled: false}
	default:
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			fd := f.Fd()
			return painter{enabled: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
		}
		return painter{enabled: false}
	}
}

func (p painter) pass(s string) string {
	if !p.enabled {
		return s
	}
	return text.FgGreen.Sprint(s)
}

func (p painter) fail(s string) string {
	if !p.enabled {
		return s
	}
	return text.FgRed.Sprint(s)
}
