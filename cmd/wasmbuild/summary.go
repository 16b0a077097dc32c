package main

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sanctify/wasmbuild/pkg/wasmbuild"
)

func RenderSummary(summary wasmbuild.Summary) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleRounded)

	tbl.AppendHeader(table.Row{"stage", "duration"})
	for _, stage := range summary.Stages {
		tbl.AppendRow(table.Row{stage.Name, stage.Duration.Round(time.Millisecond)})
	}
	tbl.AppendFooter(table.Row{"total", summary.Total().Round(time.Millisecond)})

	return tbl.Render()
}
