package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/howell-dev/portfolio/internal/config"
	"github.com/howell-dev/portfolio/internal/view"
)

var (
	sendTestName  string
	sendTestEmail string
)

var sendTestCmd = &cobra.Command{
	Use:   "send-test",
	Short: "Send a test message through the configured EmailJS template",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		client := newEmailClient(cfg)
		if !client.Configured() {
			return fmt.Errorf("EmailJS is not configured")
		}

		date, clock := view.FormatStamp(time.Now(), view.MatchLocale(""))
		err = client.Send(context.Background(), map[string]string{
			"name":    sendTestName,
			"email":   sendTestEmail,
			"message": "Test message from the portfolio command line.",
			"date":    date,
			"time":    clock,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", view.ErrorMessage(err), err)
		}
		fmt.Println(view.SentMessage)
		return nil
	},
}

func init() {
	sendTestCmd.Flags().StringVar(&sendTestName, "name", "Portfolio", "sender name")
	sendTestCmd.Flags().StringVar(&sendTestEmail, "email", "noreply@example.com", "reply-to address")
	rootCmd.AddCommand(sendTestCmd)
}
