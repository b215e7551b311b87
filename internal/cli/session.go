package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/wire"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage attendance sessions",
	Long:  "Create sessions, record attendance, and list past sessions",
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create [number]",
	Short: "Create a new attendance session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		students, _ := cmd.Flags().GetStringSlice("student")

		session, err := wire.SessionService().CreateSession(ctx, primary.CreateSessionRequest{
			SessionNumber: args[0],
			Students:      students,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Created session %s (session %s)\n", session.ID, session.SessionNumber)
		if len(session.Students) > 0 {
			fmt.Printf("  Attendees: %s\n", strings.Join(session.Students, ", "))
		}
		return nil
	},
}

var sessionJoinCmd = &cobra.Command{
	Use:   "join [number] [name]",
	Short: "Record a student's attendance in a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		session, err := wire.SessionService().JoinSession(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("✓ Session %s attendees: %s\n", session.SessionNumber, strings.Join(session.Students, ", "))
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sessions, err := wire.SessionService().ListSessions(ctx)
		if err != nil {
			return err
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found")
			return nil
		}

		fmt.Printf("Found %d session(s):\n\n", len(sessions))
		for _, session := range sessions {
			fmt.Printf("%-8s session %-4s %d attendee(s)", session.ID, session.SessionNumber, len(session.Students))
			if len(session.Students) > 0 {
				fmt.Printf(": %s", strings.Join(session.Students, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	sessionCreateCmd.Flags().StringSliceP("student", "s", nil, "Initial attendee name (repeatable)")

	sessionCmd.AddCommand(sessionCreateCmd)
	sessionCmd.AddCommand(sessionJoinCmd)
	sessionCmd.AddCommand(sessionListCmd)
}

// SessionCmd returns the session command
func SessionCmd() *cobra.Command {
	return sessionCmd
}
