package cmd

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/nezticle/qlmdenoiser/pipeline"
	"github.com/olekukonko/tablewriter"
)

func displayRunStats(stats []pipeline.FileStats, total time.Duration) {
	var buf bytes.Buffer
	renderRunStats(&buf, stats, total)
	logger.Noticef("denoise statistics\n%s", buf.String())
}

func renderRunStats(w io.Writer, stats []pipeline.FileStats, total time.Duration) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"File", "Size", "Load", "Denoise", "Save", "Replace", "Total"})
	for _, stat := range stats {
		table.Append([]string{
			filepath.Base(stat.Path),
			fmt.Sprintf("%dx%d", stat.Width, stat.Height),
			stat.LoadTime.String(),
			stat.DenoiseTime.String(),
			stat.SaveTime.String(),
			stat.ReplaceTime.String(),
			stat.TotalTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", fmt.Sprintf("%d FILE(S)", len(stats)), total.String()})

	table.Render()
}
