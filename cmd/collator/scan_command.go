package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"collator/internal/library"
)

type scanFileView struct {
	File       string `json:"file"`
	Path       string `json:"path"`
	PathArtist string `json:"path_artist"`
	PathAlbum  string `json:"path_album"`
	TitleTag   string `json:"title_tag,omitempty"`
	ArtistTag  string `json:"artist_tag,omitempty"`
	AlbumTag   string `json:"album_tag,omitempty"`
}

type scanFailureView struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type scanReport struct {
	RunID          string            `json:"run_id"`
	Root           string            `json:"root"`
	ElapsedSeconds float64           `json:"elapsed_seconds"`
	AudioCount     int               `json:"audio_count"`
	UnknownCount   int               `json:"unknown_count"`
	Audio          []scanFileView    `json:"audio"`
	Unknown        []string          `json:"unknown,omitempty"`
	Failures       []scanFailureView `json:"failures,omitempty"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var lenient bool
	var showUnknown bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Scan the library and report identified audio files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := ctx.runScan(args, lenient)
			if err != nil {
				return err
			}

			report := buildScanReport(outcome, showUnknown)
			if jsonOut {
				return writeJSON(cmd, report)
			}
			printScanReport(cmd, report, outcome)
			return nil
		},
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "Collect per-file errors instead of aborting on the first one")
	cmd.Flags().BoolVar(&showUnknown, "show-unknown", false, "List unknown file paths in the report")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the report as JSON")
	return cmd
}

func buildScanReport(outcome *scanOutcome, showUnknown bool) scanReport {
	result := outcome.result

	report := scanReport{
		RunID:          outcome.runID,
		Root:           outcome.root,
		ElapsedSeconds: outcome.elapsed.Seconds(),
		AudioCount:     len(result.Audio),
		UnknownCount:   len(result.Unknown),
		Audio:          make([]scanFileView, 0, len(result.Audio)),
	}

	for _, d := range result.Audio {
		report.Audio = append(report.Audio, fileView(d))
	}
	if showUnknown {
		report.Unknown = result.Unknown
	}
	for _, failure := range result.Failures {
		report.Failures = append(report.Failures, scanFailureView{
			Path:  failure.Path,
			Error: failure.Err.Error(),
		})
	}

	return report
}

// fileView flattens a descriptor for display. Path accessors cannot fail
// here: the scanner already validated layout depth for every audio file.
func fileView(d *library.Descriptor) scanFileView {
	artist, _ := d.PathArtist()
	album, _ := d.PathAlbum()
	return scanFileView{
		File:       filepath.Base(d.Path()),
		Path:       d.Path(),
		PathArtist: artist,
		PathAlbum:  album,
		TitleTag:   d.TitleTag(),
		ArtistTag:  d.ArtistTag(),
		AlbumTag:   d.AlbumTag(),
	}
}

func printScanReport(cmd *cobra.Command, report scanReport, outcome *scanOutcome) {
	out := cmd.OutOrStdout()
	colorize := colorizeOutput(out)

	fmt.Fprintln(out, renderStatusLine("Elapsed", statusInfo, outcome.elapsed.Round(10*time.Millisecond).String(), colorize))
	fmt.Fprintln(out, renderStatusLine("Audio files", statusOK, fmt.Sprintf("%d", report.AudioCount), colorize))
	fmt.Fprintln(out, renderStatusLine("Unknown files", statusInfo, fmt.Sprintf("%d", report.UnknownCount), colorize))
	if len(report.Failures) > 0 {
		fmt.Fprintln(out, renderStatusLine("Failures", statusWarn, fmt.Sprintf("%d", len(report.Failures)), colorize))
	}

	if len(report.Audio) > 0 {
		rows := make([][]string, 0, len(report.Audio))
		for _, view := range report.Audio {
			rows = append(rows, []string{
				view.File, view.PathArtist, view.PathAlbum,
				view.TitleTag, view.ArtistTag, view.AlbumTag,
			})
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderTable(
			[]string{"File", "Path Artist", "Path Album", "Title Tag", "Artist Tag", "Album Tag"},
			rows))
	}

	if len(report.Unknown) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Unknown files:")
		for _, path := range report.Unknown {
			fmt.Fprintf(out, "  %s\n", path)
		}
	}

	if len(report.Failures) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Failed files:")
		for _, failure := range report.Failures {
			fmt.Fprintf(out, "  %s: %s\n", failure.Path, failure.Error)
		}
	}
}
