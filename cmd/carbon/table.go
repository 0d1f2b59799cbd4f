package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"carbon/internal/dedupe"
	"carbon/internal/session"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderGroupsTable(groups []dedupe.Group) string {
	rows := make([][]string, 0, len(groups))
	for i, group := range groups {
		for j, member := range group.Members {
			groupCell := ""
			roleCell := "duplicate"
			if j == 0 {
				groupCell = fmt.Sprintf("%d", i+1)
				roleCell = "primary"
			}
			rows = append(rows, []string{
				groupCell,
				roleCell,
				member.Path,
				humanize.IBytes(uint64(member.Size)),
			})
		}
	}
	return renderTable(
		[]string{"Group", "Role", "Path", "Size"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	)
}

func renderStats(stats session.Stats, wasted int64) string {
	rows := [][]string{
		{"Files scanned", fmt.Sprintf("%d", stats.FilesScanned)},
		{"Duplicate groups", fmt.Sprintf("%d", stats.DuplicateGroups)},
		{"Bytes scanned", humanize.IBytes(uint64(stats.BytesScanned))},
		{"Reclaimable", humanize.IBytes(uint64(wasted))},
	}
	return renderTable(
		[]string{"Statistic", "Value"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	)
}
