package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"coursebuild/internal/folder"
	"coursebuild/internal/logging"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var startLesson int
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "import <course-dir>",
		Short: "Convert a playback course folder to builder JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.WithComponent(ctx.ensureLogger(), "import")

			start := startLesson
			if start < 1 {
				start = cfg.Toc.StartLesson
			}
			result, err := folder.ReadCourse(args[0], folder.Options{StartLessonNumber: start})
			if err != nil {
				return fmt.Errorf("read course: %w", err)
			}
			for _, issue := range result.Issues {
				logger.Warn("skipped file", "path", issue.Path, "error", issue.Err.Error())
			}
			logger.Info("course imported",
				"code", result.Course.CourseCode,
				"lessons", len(result.Course.Lessons),
				"issues", len(result.Issues))

			if summaryOnly {
				fmt.Fprintln(cmd.OutOrStdout(), lessonTable(cmd.OutOrStdout(), result.Course))
				return nil
			}

			raw, err := json.MarshalIndent(result.Course, "", "  ")
			if err != nil {
				return fmt.Errorf("encode builder json: %w", err)
			}
			raw = append(raw, '\n')
			if outputPath == "" {
				_, err := cmd.OutOrStdout().Write(raw)
				return err
			}
			if err := os.WriteFile(outputPath, raw, 0o644); err != nil {
				return fmt.Errorf("write builder json: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), lessonTable(cmd.OutOrStdout(), result.Course))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write builder JSON to this file instead of stdout")
	cmd.Flags().IntVar(&startLesson, "start-lesson", 0, "First lesson number for table-of-contents titles (default from config)")
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "Print the lesson table without the JSON payload")
	return cmd
}

func formatWeekSection(week, section int) string {
	return strconv.Itoa(week) + "-" + strconv.Itoa(section)
}
