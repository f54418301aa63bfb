package birthday

import (
	"time"

	"github.com/birthdaywisher/backend/api/v1/models"
)

// MatchDay returns the users whose birth month and day equal ref's,
// preserving input order. The birth year is ignored.
//
// The comparison is exact field equality: a February 29 birth date only
// matches when ref itself falls on February 29, so leap-day users are
// greeted only in leap years.
func MatchDay(ref time.Time, users []models.User) []models.User {
	var matched []models.User
	for _, user := range users {
		if user.DateOfBirth.Month() == ref.Month() && user.DateOfBirth.Day() == ref.Day() {
			matched = append(matched, user)
		}
	}
	return matched
}
