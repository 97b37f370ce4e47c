package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"coursebuild/internal/convert"
)

func newTocCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var startLesson int

	cmd := &cobra.Command{
		Use:   "toc <course-dir>",
		Short: "Show the parsed table of contents of a course folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			start := startLesson
			if start < 1 {
				start = cfg.Toc.StartLesson
			}

			path := filepath.Join(args[0], "subjects.json")
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			var toc convert.Toc
			if err := json.Unmarshal(raw, &toc); err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			index := convert.ParseToc(toc, start)

			if jsonOutput {
				return writeJSON(cmd, tocView(index))
			}

			headers := []string{"#", "Week", "Week Title", "Lesson Title"}
			aligns := []columnAlignment{alignRight, alignRight, alignLeft, alignLeft}
			rows := make([][]string, 0, len(index.LessonTitles))
			for _, number := range sortedKeys(index.LessonTitles) {
				week := index.LessonWeeks[number]
				rows = append(rows, []string{
					strconv.Itoa(number),
					strconv.Itoa(week),
					index.WeekTitles[week],
					index.LessonTitles[number],
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(cmd.OutOrStdout(), headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the parsed table of contents as JSON")
	cmd.Flags().IntVar(&startLesson, "start-lesson", 0, "First lesson number (default from config)")
	return cmd
}

type tocEntry struct {
	Lesson    int    `json:"lesson"`
	Week      int    `json:"week"`
	WeekTitle string `json:"weekTitle"`
	Title     string `json:"title"`
}

func tocView(index convert.TocIndex) []tocEntry {
	entries := make([]tocEntry, 0, len(index.LessonTitles))
	for _, number := range sortedKeys(index.LessonTitles) {
		week := index.LessonWeeks[number]
		entries = append(entries, tocEntry{
			Lesson:    number,
			Week:      week,
			WeekTitle: index.WeekTitles[week],
			Title:     index.LessonTitles[number],
		})
	}
	return entries
}

func sortedKeys(m map[int]string) []int {
	keys := make([]int, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}
