package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/birthdaywisher/backend/api/v1/birthday"
	"github.com/birthdaywisher/backend/api/v1/mail"
	"github.com/birthdaywisher/backend/api/v1/models"
)

// UserSource is the slice of the record store the sweeper needs.
type UserSource interface {
	GetUsers(ctx context.Context) ([]models.User, error)
}

// Sweeper runs the daily birthday check: once per day at a fixed local
// wall-clock time it fetches all users, matches today's month and day,
// and emails each matched user in sequence.
type Sweeper struct {
	store  UserSource
	mailer mail.Mailer
	clock  Clock

	hour   int
	minute int

	// sendTimeout bounds each delivery attempt so one stalled
	// transport call cannot hang the rest of the sweep.
	sendTimeout time.Duration
}

func New(store UserSource, mailer mail.Mailer, hour, minute int) *Sweeper {
	return &Sweeper{
		store:       store,
		mailer:      mailer,
		clock:       systemClock{},
		hour:        hour,
		minute:      minute,
		sendTimeout: 30 * time.Second,
	}
}

// NextFire returns the next scheduled sweep time strictly after now.
func (s *Sweeper) NextFire(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run blocks, sweeping at every scheduled fire time until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	for {
		now := s.clock.Now()
		wait := s.NextFire(now).Sub(now)

		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(wait):
			s.Sweep(ctx)
		}
	}
}

// Sweep performs one match-and-notify cycle for the current date. A failed
// fetch skips the whole day; a failed send is logged and the loop moves on,
// so one recipient never blocks the others.
func (s *Sweeper) Sweep(ctx context.Context) {
	today := s.clock.Now()
	log.Printf("Running birthday check for %s", today.Format("January 2"))

	users, err := s.store.GetUsers(ctx)
	if err != nil {
		log.Printf("Birthday sweep failed to fetch users: %v", err)
		return
	}

	matched := birthday.MatchDay(today, users)
	if len(matched) == 0 {
		log.Println("No birthdays today")
		return
	}

	for _, user := range matched {
		subject, text, html := greeting(user.Username)

		sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
		err := s.mailer.Send(sendCtx, user.Email, subject, text, html)
		cancel()

		if err != nil {
			log.Printf("Failed to send birthday email to %s: %v", user.Email, err)
			continue
		}
		log.Printf("Birthday email sent to %s", user.Email)
	}
}

func greeting(username string) (subject, text, html string) {
	subject = "🎉 Happy Birthday!"
	text = fmt.Sprintf("Happy Birthday, %s! 🎂", username)
	html = fmt.Sprintf("<h1>🎉 Happy Birthday, %s!</h1><p>Wishing you joy, success and happiness today!</p>", username)
	return subject, text, html
}
