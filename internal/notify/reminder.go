package notify

import (
	"context"
	"sync"
	"time"

	"github.com/viscontie/junk-mail-service/internal/obs"
	"github.com/viscontie/junk-mail-service/internal/prefs"
)

// Interval maps a reminder cadence to its wait between pushes. With
// testIntervals set, the 10-25 second stand-ins from the prototype are
// used instead of the real periods; monthly is approximated as 30 days.
func Interval(f prefs.Frequency, testIntervals bool) (time.Duration, bool) {
	if testIntervals {
		switch f {
		case prefs.Daily:
			return 10 * time.Second, true
		case prefs.Weekly:
			return 15 * time.Second, true
		case prefs.Biweekly:
			return 20 * time.Second, true
		case prefs.Monthly:
			return 25 * time.Second, true
		}
		return 0, false
	}
	switch f {
	case prefs.Daily:
		return 24 * time.Hour, true
	case prefs.Weekly:
		return 7 * 24 * time.Hour, true
	case prefs.Biweekly:
		return 14 * 24 * time.Hour, true
	case prefs.Monthly:
		return 30 * 24 * time.Hour, true
	}
	return 0, false
}

// Reminders schedules one repeating order-reminder push per user.
// Rescheduling replaces any pending timer; Never cancels it. Timers
// derive from the base context given at construction, never from the
// request that scheduled them, so they keep firing for the life of the
// process after the scheduling request has been answered.
type Reminders struct {
	sender        Sender
	testIntervals bool
	base          context.Context

	mu     sync.Mutex
	timers map[string]context.CancelFunc
}

// NewReminders returns a scheduler delivering through sender. All timers
// stop when ctx ends or Stop is called.
func NewReminders(ctx context.Context, sender Sender, testIntervals bool) *Reminders {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Reminders{
		sender:        sender,
		testIntervals: testIntervals,
		base:          ctx,
		timers:        make(map[string]context.CancelFunc),
	}
}

// Schedule sets the user's reminder cadence. The push goes to token; an
// empty token or a Never cadence just cancels whatever is pending.
func (r *Reminders) Schedule(uid, token string, f prefs.Frequency) {
	r.cancel(uid)
	interval, ok := Interval(f, r.testIntervals)
	if !ok || token == "" {
		obs.Logger.Info("reminder_cancelled", "uid", uid, "frequency", string(f))
		return
	}
	tctx, cancel := context.WithCancel(r.base)
	r.mu.Lock()
	r.timers[uid] = cancel
	r.mu.Unlock()
	go r.loop(tctx, uid, token, interval)
	obs.Logger.Info("reminder_scheduled", "uid", uid, "frequency", string(f), "interval", interval.String())
}

// ScheduleAll restores reminders from persisted preferences, typically
// at startup so schedules survive a process restart. lookup resolves
// each user's push token; users with notifications off are skipped.
func (r *Reminders) ScheduleAll(all map[string]prefs.Preferences, lookup func(uid string) string) {
	for uid, p := range all {
		if !p.Notifications {
			continue
		}
		r.Schedule(uid, lookup(uid), p.Reminder)
	}
}

// Active reports the number of pending reminder timers.
func (r *Reminders) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

func (r *Reminders) loop(ctx context.Context, uid, token string, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := r.sender.Send(ctx, ReminderMessage(token)); err != nil {
				obs.Logger.Warn("reminder_send_failed", "uid", uid, "error", err)
			}
		}
	}
}

func (r *Reminders) cancel(uid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.timers[uid]; ok {
		c()
		delete(r.timers, uid)
	}
}

// Stop cancels every pending reminder.
func (r *Reminders) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for uid, c := range r.timers {
		c()
		delete(r.timers, uid)
	}
}
