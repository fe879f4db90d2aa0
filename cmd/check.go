package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"snowreminder/internal/calendar"
	"snowreminder/internal/config"
	"snowreminder/internal/logging"
	"snowreminder/internal/notify"
	"snowreminder/internal/reminder"
)

// buildPipeline validates configuration and constructs the clients the
// pipeline needs. Errors carry their kind so callers can report them
// uniformly: Config before any network use, Init for client construction.
func buildPipeline(ctx context.Context, logger *slog.Logger) (*reminder.Pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, reminder.NewError(reminder.KindConfig, err)
	}

	client, err := calendar.NewClient(ctx, []byte(cfg.ServiceAccountJSON))
	if err != nil {
		logger.Error("failed to initialize Google Calendar API", logging.Err(err))
		return nil, reminder.NewError(reminder.KindInit, err)
	}

	mailer, err := notify.NewMailer(cfg.SMTPServer, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPassword, cfg.EmailRecipient)
	if err != nil {
		logger.Error("failed to initialize SMTP client", logging.Err(err))
		return nil, reminder.NewError(reminder.KindInit, err)
	}

	return &reminder.Pipeline{
		Calendars: cfg.CalendarIDs(),
		Events:    client,
		Notifier:  mailer,
		Logger:    logger,
	}, nil
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run one reminder check and exit",
		Long: `Poll the configured calendars once, filter for weekend snowboarding
events, and send the parking reminder if one falls within the next 7 days.
Exits non-zero on any fatal failure.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			logger := slog.Default()

			pipeline, err := buildPipeline(ctx, logger)
			if err != nil {
				return err
			}

			res, err := pipeline.Run(ctx)
			if err != nil {
				return err
			}

			logger.Info("check complete",
				slog.Int("events", res.EventsExamined),
				slog.Int("matched", len(res.Matched)),
				slog.Int("in_window", res.InWindow),
				slog.Bool("sent", res.Sent))
			return nil
		},
	}

	return cmd
}
