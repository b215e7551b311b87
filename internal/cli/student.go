// Package cli contains the cobra command tree. Parse failures from the
// service layer carry fixed constraint messages which are printed
// verbatim.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/wire"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage the student roster",
	Long:  "Add, list, tag, grade, and delete students in the tally roster",
}

var studentAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a student to the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")
		address, _ := cmd.Flags().GetString("address")
		tags, _ := cmd.Flags().GetStringSlice("tag")

		student, err := wire.StudentService().AddStudent(ctx, primary.AddStudentRequest{
			Name:    args[0],
			Phone:   phone,
			Email:   email,
			Address: address,
			Tags:    tags,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Added student %s: %s\n", student.ID, student.Name)
		fmt.Printf("  Phone: %s  Email: %s\n", student.Phone, student.Email)
		fmt.Printf("  Address: %s\n", student.Address)
		if len(student.Tags) > 0 {
			fmt.Printf("  Tags: %s\n", strings.Join(student.Tags, ", "))
		}
		return nil
	},
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all students",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		students, err := wire.StudentService().ListStudents(ctx)
		if err != nil {
			return err
		}

		if len(students) == 0 {
			fmt.Println("No students found")
			return nil
		}

		fmt.Printf("Found %d student(s):\n\n", len(students))
		for i, student := range students {
			fmt.Printf("%d. %-8s %s", i+1, student.ID, student.Name)
			if len(student.Tags) > 0 {
				fmt.Printf(" [%s]", strings.Join(student.Tags, ", "))
			}
			fmt.Println()
			fmt.Printf("   %s | %s | %s\n", student.Phone, student.Email, student.Address)
			if student.Grades != nil {
				fmt.Printf("   Grades: %s\n", formatGrades(student.Grades))
			}
		}
		return nil
	},
}

var studentDeleteCmd = &cobra.Command{
	Use:   "delete [index]",
	Short: "Delete the student at the given list position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		student, err := wire.StudentService().DeleteStudent(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("✓ Deleted student: %s\n", student.Name)
		return nil
	},
}

var studentTagCmd = &cobra.Command{
	Use:   "tag [index]",
	Short: "Replace the tags of the student at the given list position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		tags, _ := cmd.Flags().GetStringSlice("tag")

		student, err := wire.StudentService().TagStudent(ctx, args[0], tags)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Tagged %s: %s\n", student.Name, strings.Join(student.Tags, ", "))
		return nil
	},
}

var studentGradesCmd = &cobra.Command{
	Use:   "grades [index] [scores]",
	Short: "Show or record graded-test scores for the student at the given list position",
	Long: `With only an index, show the student's recorded scores. With a scores
argument, record them as five whitespace-separated components:
reading assessment 1, reading assessment 2, mid-terms, finals, practical exam.
Each component is '-' (ungraded) or a non-negative number.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if len(args) == 1 {
			grades, err := wire.StudentService().GetGrades(ctx, args[0])
			if err != nil {
				return err
			}
			if grades == nil {
				fmt.Println("No grades recorded")
				return nil
			}
			fmt.Printf("Grades: %s\n", formatGrades(grades))
			return nil
		}

		student, err := wire.StudentService().SetGrades(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("✓ Recorded grades for %s: %s\n", student.Name, formatGrades(student.Grades))
		return nil
	},
}

func formatGrades(g *primary.GradedTest) string {
	return fmt.Sprintf("RA1 %s, RA2 %s, MT %s, F %s, PE %s",
		g.ReadingAssessment1, g.ReadingAssessment2, g.MidTerms, g.Finals, g.PracticalExam)
}

func init() {
	studentAddCmd.Flags().StringP("phone", "p", "", "Phone number (digits, at least 3)")
	studentAddCmd.Flags().StringP("email", "e", "", "Email address")
	studentAddCmd.Flags().StringP("address", "a", "", "Home address")
	studentAddCmd.Flags().StringSliceP("tag", "t", nil, "Tag (repeatable)")
	studentAddCmd.MarkFlagRequired("phone")
	studentAddCmd.MarkFlagRequired("email")
	studentAddCmd.MarkFlagRequired("address")

	studentTagCmd.Flags().StringSliceP("tag", "t", nil, "Tag (repeatable)")
	studentTagCmd.MarkFlagRequired("tag")

	studentCmd.AddCommand(studentAddCmd)
	studentCmd.AddCommand(studentListCmd)
	studentCmd.AddCommand(studentDeleteCmd)
	studentCmd.AddCommand(studentTagCmd)
	studentCmd.AddCommand(studentGradesCmd)
}

// StudentCmd returns the student command
func StudentCmd() *cobra.Command {
	return studentCmd
}
