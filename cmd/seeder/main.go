// Command seeder creates a demo account with a synthetic mood history.
// It is intended for local development and demos, not production.
//
// Flags:
//
//	--email     demo account email (default: demo@moodtrack.local)
//	--password  demo account password (default: demo-password)
//	--days      how many past days of history to generate (default: 30)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres"
	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/moodentry"
	"github.com/calmbird/moodtrack-backend/internal/adapter/postgres/user"
	"github.com/calmbird/moodtrack-backend/internal/app"
	"github.com/calmbird/moodtrack-backend/internal/config"
	"github.com/calmbird/moodtrack-backend/internal/domain"
)

// seedStates pairs each mood state with an intensity range so the generated
// history looks plausible (stressed days score low, happy days score high).
var seedStates = []struct {
	state domain.MoodState
	min   int
	max   int
}{
	{domain.MoodStateHappy, 7, 10},
	{domain.MoodStateCalm, 6, 9},
	{domain.MoodStateEnergetic, 7, 10},
	{domain.MoodStateNeutral, 4, 7},
	{domain.MoodStateTired, 3, 6},
	{domain.MoodStateStressed, 2, 5},
	{domain.MoodStateAnxious, 2, 5},
	{domain.MoodStateSad, 1, 4},
}

var seedNotes = []string{
	"",
	"long walk after lunch",
	"slept badly",
	"good call with friends",
	"deadline pressure",
	"quiet day",
}

func main() {
	emailFlag := flag.String("email", "demo@moodtrack.local", "demo account email")
	passwordFlag := flag.String("password", "demo-password", "demo account password")
	daysFlag := flag.Int("days", 30, "days of history to generate")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := user.New(pool)
	moods := moodentry.New(pool)

	demoUser, err := ensureUser(ctx, users, *emailFlag, *passwordFlag)
	if err != nil {
		logger.Error("ensure demo user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := domain.DateOnly(time.Now())
	seedFrom := today.AddDate(0, 0, -(*daysFlag - 1))

	// Re-runs resume after the newest existing entry instead of stacking
	// duplicate days onto the demo history.
	switch latest, err := moods.LatestDate(ctx, demoUser.ID); {
	case err == nil:
		if !latest.Before(today) {
			logger.Info("history already current", slog.String("email", demoUser.Email))
			return
		}
		if next := latest.AddDate(0, 0, 1); next.After(seedFrom) {
			seedFrom = next
		}
	case errors.Is(err, domain.ErrNotFound):
		// fresh account, seed the full range
	default:
		logger.Error("read latest entry date", slog.String("error", err.Error()))
		os.Exit(1)
	}

	created := 0
	for date := seedFrom; !date.After(today); date = date.AddDate(0, 0, 1) {
		// Leave occasional gaps so streak and reminder logic has
		// something to react to.
		if rng.Intn(10) == 0 {
			continue
		}

		pick := seedStates[rng.Intn(len(seedStates))]
		entry := &domain.MoodEntry{
			ID:        uuid.New(),
			UserID:    demoUser.ID,
			Date:      date,
			State:     pick.state,
			Intensity: pick.min + rng.Intn(pick.max-pick.min+1),
			Note:      seedNotes[rng.Intn(len(seedNotes))],
			CreatedAt: date.Add(12 * time.Hour),
		}

		if _, err := moods.Create(ctx, entry); err != nil {
			logger.Error("create mood entry",
				slog.String("date", entry.Date.Format("2006-01-02")),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		created++
	}

	logger.Info("seed complete",
		slog.String("email", demoUser.Email),
		slog.Int("entries", created),
	)
}

func ensureUser(ctx context.Context, users *user.Repo, email, password string) (*domain.User, error) {
	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Demo User",
		Role:         domain.UserRoleUser,
		PasswordHash: string(hash),
	})
}
