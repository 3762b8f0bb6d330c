package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagLogLines int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent notifications",
	RunE:  runLog,
}

func init() {
	logCmd.Flags().IntVarP(&flagLogLines, "lines", "n", 20, "number of lines to show")
}

func runLog(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	lines := a.ActivityTail(flagLogLines)
	if len(lines) == 0 {
		fmt.Println("No notifications yet.")
		return nil
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
