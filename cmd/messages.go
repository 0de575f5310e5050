package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/howell-dev/portfolio/internal/config"
)

var messagesLimit int

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List recent contact form submissions",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		exitOnError(err)

		db, err := openStore(cfg)
		exitOnError(err)
		defer db.Close()

		msgs, err := db.RecentMessages(context.Background(), messagesLimit)
		exitOnError(err)

		if len(msgs) == 0 {
			fmt.Println("No messages yet.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "RECEIVED\tSTATUS\tNAME\tEMAIL\tMESSAGE")
		for _, m := range msgs {
			body := []rune(m.Body)
			if len(body) > 60 {
				body = append(body[:57], []rune("...")...)
			}
			fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\t%s\n", m.Date, m.Time, m.Status, m.Name, m.Email, string(body))
		}
		w.Flush()
	},
}

func init() {
	messagesCmd.Flags().IntVarP(&messagesLimit, "limit", "n", 20, "number of messages to show")
	rootCmd.AddCommand(messagesCmd)
}
