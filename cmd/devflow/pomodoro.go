package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/devflow/internal/ui"
	"github.com/amonks/devflow/pomodoro"
	"github.com/amonks/devflow/store"
)

var pomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Run one focus session in the foreground",
	Long: `Run one focus session in the foreground.

The countdown is printed once a minute. Interrupt to abandon the session.
--seconds shortens the real-time length of the session while the countdown
still covers the full 25 minutes.`,
	Args: cobra.NoArgs,
	RunE: runPomodoro,
}

var pomodoroSeconds int

func init() {
	rootCmd.AddCommand(pomodoroCmd)
	pomodoroCmd.Flags().IntVar(&pomodoroSeconds, "seconds", store.PomodoroDuration, "Real-time length of the session in seconds")
}

func runPomodoro(cmd *cobra.Command, args []string) error {
	if pomodoroSeconds <= 0 {
		return fmt.Errorf("--seconds must be positive")
	}
	interval := time.Duration(pomodoroSeconds) * time.Second / store.PomodoroDuration
	if interval <= 0 {
		interval = time.Nanosecond
	}

	s, err := openSession(cmd, openOptions{
		bell:     cmd.OutOrStdout(),
		pomodoro: []pomodoro.Option{pomodoro.WithInterval(interval)},
	})
	if err != nil {
		return err
	}
	defer s.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	updates, unsubscribe := s.app.Store.SubscribeLatest()
	defer unsubscribe()

	s.app.Pomodoro.Start(ctx)
	fmt.Fprintf(s.out, "Focus session started (%s)\n", ui.FormatCountdown(store.PomodoroDuration))

	lastMinute := store.PomodoroDuration / 60
	for {
		select {
		case <-ctx.Done():
			s.app.Pomodoro.Stop()
			_, err := fmt.Fprintln(s.out, "Pomodoro stopped")
			return err
		case st := <-updates:
			if !st.Pomodoro.Active {
				// Running takes the driver lock, so the completion notice
				// has been written once it returns.
				s.app.Pomodoro.Running()
				return nil
			}
			minute := st.Pomodoro.TimeRemaining / 60
			if minute < lastMinute {
				lastMinute = minute
				fmt.Fprintf(s.out, "%s remaining\n", ui.FormatCountdown(st.Pomodoro.TimeRemaining))
			}
		}
	}
}
