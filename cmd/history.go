package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List your recent exam attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		attempts, err := svc.st.Attempts().RecentAttempts(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tEXAM\tSCORE\tRESULT\tTIME")
		for _, a := range attempts {
			verdict := "failed"
			if a.Passed {
				verdict = "passed"
			}
			fmt.Fprintf(w, "%s\t%s\t%d%%\t%s\t%d:%02d\n",
				a.Timestamp.Format("2006-01-02 15:04"),
				a.QuizTitle,
				a.Score,
				verdict,
				a.DurationSecs/60, a.DurationSecs%60,
			)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to list")
}
