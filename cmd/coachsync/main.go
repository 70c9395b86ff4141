package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	_ "modernc.org/sqlite"

	emailPkg "github.com/azizzarr/CoachSync/internal/adapters/email"
	"github.com/azizzarr/CoachSync/internal/adapters/notify"
	"github.com/azizzarr/CoachSync/internal/adapters/storage"
	clientStore "github.com/azizzarr/CoachSync/internal/adapters/storage/client"
	sessionStore "github.com/azizzarr/CoachSync/internal/adapters/storage/session"
	weightStore "github.com/azizzarr/CoachSync/internal/adapters/storage/weight"
	workoutPlanStore "github.com/azizzarr/CoachSync/internal/adapters/storage/workoutplan"
	"github.com/azizzarr/CoachSync/internal/application/orchestrators"
	"github.com/azizzarr/CoachSync/internal/application/projections"
	"github.com/azizzarr/CoachSync/internal/application/scheduling"
	clientDomain "github.com/azizzarr/CoachSync/internal/domain/client"
	"github.com/azizzarr/CoachSync/internal/domain/session"
	"github.com/azizzarr/CoachSync/internal/domain/workoutplan"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// config is read from the environment at startup.
type config struct {
	DBPath     string `env:"COACHSYNC_DB_PATH" envDefault:"coachsync.db"`
	ResendKey  string `env:"COACHSYNC_RESEND_KEY"`
	ResendFrom string `env:"COACHSYNC_RESEND_FROM" envDefault:"CoachSync <noreply@coachsync.app>"`
	Env        string `env:"COACHSYNC_ENV" envDefault:"development"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse environment: %v", err)
	}

	// WAL mode, foreign keys and a busy timeout for concurrent readers.
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Println("Database initialized successfully!")

	// Wrap the connection so slow queries get logged.
	tdb := storage.NewTimedDB(db)

	ctx := context.Background()
	sessStore := sessionStore.NewSQLiteStore(tdb)
	cliStore := clientStore.NewSQLiteStore(tdb)
	wtStore := weightStore.NewSQLiteStore(tdb)
	planStore := workoutPlanStore.NewSQLiteStore(tdb)

	// Hydrate the in-memory calendar from the durable session store.
	calendar := scheduling.NewSessionStore()
	persisted, err := sessStore.List(ctx)
	if err != nil {
		log.Fatalf("failed to load sessions: %v", err)
	}
	if err := calendar.Load(persisted); err != nil {
		log.Fatalf("failed to hydrate calendar: %v", err)
	}

	notifier := notify.NewSlogNotifier()

	// Seed demo data on first run only.
	if len(persisted) == 0 && cfg.Env != "production" {
		if err := seedDemoData(ctx, demoSeedDeps{
			calendar: calendar,
			sessions: sessStore,
			clients:  cliStore,
			weights:  wtStore,
			plans:    planStore,
			notifier: notifier,
		}); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
		log.Println("Demo seed data loaded (dev mode)")
	}

	// Configure email sender for session reminders.
	var sender orchestrators.ReminderSender
	if cfg.ResendKey != "" {
		sender = emailPkg.NewResendSender(cfg.ResendKey, cfg.ResendFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		if cfg.Env == "production" {
			log.Println("WARNING: COACHSYNC_RESEND_KEY is not set — reminder delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set COACHSYNC_RESEND_KEY for real delivery)")
		}
	}

	now := time.Now()

	// Remind every client with a session still scheduled for today.
	reminderDeps := orchestrators.SendSessionReminderDeps{Calendar: calendar, ClientStore: cliStore, Sender: sender}
	if sent, err := orchestrators.ExecuteSendDailyReminders(ctx, now, reminderDeps); err != nil {
		slog.Warn("reminder_run_failed", "error", err)
	} else if sent > 0 {
		log.Printf("Sent %d session reminders for today", sent)
	}

	dashboard, err := projections.QueryGetCoachDashboard(ctx, projections.GetCoachDashboardDeps{
		Calendar:    calendar,
		ClientStore: cliStore,
		WeightStore: wtStore,
	}, now)
	if err != nil {
		log.Fatalf("failed to build dashboard: %v", err)
	}

	slog.Info("dashboard",
		"today_sessions", dashboard.Statistics.TodaySessions,
		"active_clients", dashboard.Statistics.ActiveClients,
		"avg_duration_min", dashboard.Statistics.AverageDurationMin,
		"sessions_delta", dashboard.Trends.SessionsDelta,
		"upcoming", len(dashboard.UpcomingSessions))

	log.Printf("CoachSync %s ready (env=%s, db=%s, sessions=%d)", version, cfg.Env, cfg.DBPath, len(calendar.List()))
	if os.Getenv("COACHSYNC_PRINT_EVENTS") != "" {
		for _, ev := range calendar.Events() {
			log.Printf("  %s  %s — %s  %s", ev.ColorHint, ev.Start.Format("Mon 15:04"), ev.End.Format("15:04"), ev.Title)
		}
	}
}

// demoSeedDeps holds everything seedDemoData writes to.
type demoSeedDeps struct {
	calendar *scheduling.SessionStore
	sessions orchestrators.SessionDurableStore
	clients  *clientStore.SQLiteStore
	weights  orchestrators.WeightStore
	plans    orchestrators.WorkoutPlanStore
	notifier orchestrators.Notifier
}

// seedDemoData creates a demo client with two sessions, a weight entry and
// a starter workout plan so a fresh install has something to show.
func seedDemoData(ctx context.Context, deps demoSeedDeps) error {
	demo := clientDomain.Client{
		ID:          "demo-client",
		Name:        "Demo Client",
		Email:       "demo@coachsync.app",
		TrainerName: "Coach",
		Status:      clientDomain.StatusActive,
	}
	if err := deps.clients.Save(ctx, demo); err != nil {
		return err
	}

	scheduleDeps := orchestrators.ScheduleSessionDeps{Calendar: deps.calendar, SessionStore: deps.sessions, Notifier: deps.notifier}
	today := time.Now().Truncate(24 * time.Hour)
	drafts := []session.Draft{
		{Title: "Morning Session", Start: today.Add(9 * time.Hour), End: today.Add(10 * time.Hour), ClientID: demo.ID},
		{Title: "Evening Session", Start: today.Add(18 * time.Hour), End: today.Add(19 * time.Hour), ClientID: demo.ID},
	}
	for _, d := range drafts {
		if _, err := orchestrators.ExecuteScheduleSession(ctx, orchestrators.ScheduleSessionInput{Draft: d}, scheduleDeps); err != nil {
			return err
		}
	}

	weightDeps := orchestrators.RecordWeightDeps{WeightStore: deps.weights, ClientStore: deps.clients, Notifier: deps.notifier}
	if _, err := orchestrators.ExecuteRecordWeight(ctx, orchestrators.RecordWeightInput{
		ClientID:   demo.ID,
		Kg:         80,
		MeasuredAt: today,
	}, weightDeps); err != nil {
		return err
	}

	planDeps := orchestrators.AssignWorkoutPlanDeps{PlanStore: deps.plans, ClientStore: deps.clients, Notifier: deps.notifier}
	if _, err := orchestrators.ExecuteAssignWorkoutPlan(ctx, orchestrators.AssignWorkoutPlanInput{
		ClientID: demo.ID,
		WeeklySchedule: []workoutplan.WorkoutDay{
			{Day: workoutplan.Monday, WorkoutType: "Full Body", DurationMinutes: 60,
				Exercises: []workoutplan.Exercise{{Name: "Squat", Sets: 3, Reps: 8}, {Name: "Bench Press", Sets: 3, Reps: 8}}},
			{Day: workoutplan.Thursday, WorkoutType: "Conditioning", DurationMinutes: 45,
				Exercises: []workoutplan.Exercise{{Name: "Rowing", Sets: 4, Reps: 10}}},
		},
		ProgressionPlan: "Add one rep per set each week, deload every fourth week.",
	}, planDeps); err != nil {
		return err
	}
	return nil
}
