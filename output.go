// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/CrawX/go-imap-transfer/domain"
	"github.com/CrawX/go-imap-transfer/foldertree"
	"github.com/CrawX/go-imap-transfer/transfer"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func renderConflicts(w io.Writer, report *foldertree.ConflictInfo) {
	table := newTable(w, []string{"Folder", "Type", "Special", "Conflict", "Conflicting children"})

	folders := report.Flatten()
	for _, f := range folders {
		conflicts := ""
		if f.Conflicts > 0 {
			conflicts = humanize.Comma(int64(f.Conflicts))
		}
		table.Append([]string{
			strings.Repeat("  ", f.Depth) + f.Name,
			string(f.Type),
			yesNo(f.IsSpecial),
			yesNo(f.Conflict),
			conflicts,
		})
	}
	table.Render()

	total := report.TotalConflicts()
	fmt.Fprintf(w, "\n%s folders compared, %s already exist in the destination and will be merged, %s will be copied\n",
		humanize.Comma(int64(len(folders))),
		humanize.Comma(int64(total)),
		humanize.Comma(int64(len(folders)-total)),
	)
}

func renderResult(w io.Writer, result *transfer.Result, dryRun bool, duration time.Duration) {
	verb := "Transferred"
	if dryRun {
		verb = "Would transfer"
	}
	fmt.Fprintf(w, "%s %s messages in %s folders (took %s)\n",
		verb,
		humanize.Comma(int64(result.MessageCount)),
		humanize.Comma(int64(result.FolderCount)),
		duration.Round(time.Second),
	)
}

func runStatus(r *domain.TransferRun) string {
	switch {
	case len(r.Error) > 0:
		return "failed: " + r.Error
	case r.FinishedAt == nil:
		return "unfinished"
	case r.DryRun:
		return "dry-run"
	default:
		return "ok"
	}
}

func renderRuns(w io.Writer, runs []*domain.TransferRun, now time.Time) {
	table := newTable(w, []string{"Run", "Source", "Destination", "Started", "Duration", "Folders", "Messages", "Status"})

	for _, r := range runs {
		duration := ""
		if r.FinishedAt != nil {
			duration = r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String()
		}
		table.Append([]string{
			r.Id,
			r.Source,
			r.Destination,
			humanize.RelTime(r.StartedAt, now, "ago", "from now"),
			duration,
			humanize.Comma(int64(r.FolderCount)),
			humanize.Comma(int64(r.MessageCount)),
			runStatus(r),
		})
	}
	table.Render()
}

func renderFolderActions(w io.Writer, actions []*domain.FolderAction) {
	table := newTable(w, []string{"Source folder", "Destination folder", "Action", "Messages"})

	total := 0
	for _, a := range actions {
		table.Append([]string{
			a.SourcePath,
			a.DestinationPath,
			string(a.Action),
			humanize.Comma(int64(a.MessageCount)),
		})
		total += a.MessageCount
	}
	table.SetFooter([]string{"", "", "Total", humanize.Comma(int64(total))})
	table.Render()
}
