package app

import "context"

// TogglePomodoro starts a session when none is active and abandons the
// current one otherwise. It reports whether a session is now active.
func (a *App) TogglePomodoro(ctx context.Context) bool {
	if a.Store.Snapshot().Pomodoro.Active {
		a.Pomodoro.Stop()
		return false
	}
	a.Pomodoro.Start(ctx)
	return true
}
