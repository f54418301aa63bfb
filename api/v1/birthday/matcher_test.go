package birthday

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/birthdaywisher/backend/api/v1/models"
)

func userBornOn(username string, year int, month time.Month, day int) models.User {
	return models.User{
		ID:          uuid.New(),
		Username:    username,
		Email:       username + "@example.com",
		DateOfBirth: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestMatchDay(t *testing.T) {
	alice := userBornOn("alice", 2000, time.March, 10)
	bob := userBornOn("bob", 1985, time.March, 10)
	carol := userBornOn("carol", 1990, time.March, 11)
	dave := userBornOn("dave", 1990, time.April, 10)

	users := []models.User{alice, bob, carol, dave}

	t.Run("matches month and day regardless of year", func(t *testing.T) {
		ref := time.Date(2024, time.March, 10, 7, 0, 0, 0, time.Local)
		matched := MatchDay(ref, users)
		assert.Equal(t, []models.User{alice, bob}, matched)
	})

	t.Run("preserves input order", func(t *testing.T) {
		ref := time.Date(2024, time.March, 10, 7, 0, 0, 0, time.Local)
		matched := MatchDay(ref, []models.User{bob, alice})
		assert.Equal(t, []models.User{bob, alice}, matched)
	})

	t.Run("same day different month does not match", func(t *testing.T) {
		ref := time.Date(2024, time.April, 11, 0, 0, 0, 0, time.Local)
		matched := MatchDay(ref, users)
		assert.Empty(t, matched)
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		ref := time.Date(2024, time.December, 25, 0, 0, 0, 0, time.Local)
		assert.Empty(t, MatchDay(ref, users))
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		ref := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
		assert.Empty(t, MatchDay(ref, nil))
	})
}

func TestMatchDayLeapDay(t *testing.T) {
	leapling := userBornOn("leapling", 1996, time.February, 29)
	users := []models.User{leapling}

	t.Run("matches on February 29 of a leap year", func(t *testing.T) {
		ref := time.Date(2024, time.February, 29, 7, 0, 0, 0, time.Local)
		assert.Equal(t, users, MatchDay(ref, users))
	})

	t.Run("never matches in a non-leap year", func(t *testing.T) {
		feb28 := time.Date(2023, time.February, 28, 7, 0, 0, 0, time.Local)
		mar1 := time.Date(2023, time.March, 1, 7, 0, 0, 0, time.Local)
		assert.Empty(t, MatchDay(feb28, users))
		assert.Empty(t, MatchDay(mar1, users))
	})
}
