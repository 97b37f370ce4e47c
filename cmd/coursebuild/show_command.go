package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"coursebuild/internal/course"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <builder.json>",
		Short: "Show the lesson table of a builder JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := readBuilderFile(args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, c)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s  (%d lessons)\n", c.CourseCode, c.CourseName, len(c.Lessons))
			fmt.Fprintln(out, lessonTable(out, *c))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the parsed course as JSON")
	return cmd
}

func readBuilderFile(path string) (*course.Course, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read builder json: %w", err)
	}
	var c course.Course
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse builder json: %w", err)
	}
	return &c, nil
}

func lessonTable(out io.Writer, c course.Course) string {
	headers := []string{"#", "Week", "Title", "Week Title", "OT", "Practice", "Exercises"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight}

	rows := make([][]string, 0, len(c.Lessons))
	for _, lesson := range c.Lessons {
		rows = append(rows, []string{
			strconv.Itoa(lesson.LessonNumber),
			formatWeekSection(lesson.WeekNumber, lesson.SectionInWeek),
			lesson.LessonTitle,
			lesson.WeekTitle,
			yesNo(lesson.HasOrientation),
			yesNo(lesson.HasPractice),
			strconv.Itoa(len(lesson.Exercises)),
		})
	}
	return renderTable(out, headers, rows, aligns)
}
