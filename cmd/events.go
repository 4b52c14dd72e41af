/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/suggestion-board/board/internal/mq"
	"github.com/suggestion-board/board/types"
)

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect board activity events",
}

var eventsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print activity events as they are published",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("channel") {
			eventsChannel = cfg.MQ.Channel
		}
		if cfg.MQ.Backend == "" || cfg.MQ.Backend == "none" {
			return errors.New("events tail needs MQ_BACKEND set to rabbitmq or pubsub")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		broker, err := mq.Open(ctx, cfg.MQ)
		if err != nil {
			return err
		}
		defer broker.Close()

		out := cmd.OutOrStdout()
		err = broker.Subscribe(ctx, eventsChannel, func(ctx context.Context, msg mq.Message) error {
			var event types.ActivityEvent
			if err := json.Unmarshal(msg.Data, &event); err != nil {
				// Malformed payloads are acknowledged so they do not loop forever.
				slog.WarnContext(ctx, "skipping malformed activity event", "message_id", msg.ID, "error", err)
				return nil
			}
			_, err := fmt.Fprintln(out, formatEvent(event))
			return err
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

var eventsChannel string

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsTailCmd)

	eventsTailCmd.Flags().StringVar(&eventsChannel, "channel", "", "channel to read (defaults to MQ_CHANNEL)")
}

func formatEvent(event types.ActivityEvent) string {
	line := fmt.Sprintf("%s %-20s user=%d", event.OccurredAt.Format("2006-01-02T15:04:05Z07:00"), event.Kind, event.UserID)
	if event.SuggestionID != 0 {
		line += fmt.Sprintf(" suggestion=%d", event.SuggestionID)
	}
	return line
}
