package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coursebuild/internal/course"
)

func newNewCommand(ctx *commandContext) *cobra.Command {
	var code string
	var name string
	var year string
	var courseType string
	var lessons int
	var outputPath string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Scaffold an empty builder course",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			c := course.NewCourse(lessons)
			c.CourseCode = code
			c.CourseName = name
			c.Year = year
			c.CourseType = courseType
			if c.Year == "" {
				c.Year = cfg.Course.Year
			}
			if c.CourseType == "" {
				c.CourseType = cfg.Course.Type
			}

			raw, err := json.MarshalIndent(c, "", "  ")
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
			fmt.Fprintf(cmd.OutOrStdout(), "Scaffolded %d lessons in %s\n", len(c.Lessons), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Course code (e.g. 25itinse)")
	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().StringVar(&year, "year", "", "Production year for derived media URLs")
	cmd.Flags().StringVar(&courseType, "type", "", "Course type")
	cmd.Flags().IntVar(&lessons, "lessons", 14, "Number of lessons to scaffold")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write builder JSON to this file instead of stdout")
	return cmd
}
