// Package cli implements the interactive front-end of Latte Art Meister.
// It is a thin presentation layer: every invariant lives in the services,
// and the REPL only wires user input to the store API.
package cli

import (
	"bufio"
	"context"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/baristalab/lattemeister/internal/analysis"
	"github.com/baristalab/lattemeister/internal/config"
	"github.com/baristalab/lattemeister/internal/repositories/credentials"
	"github.com/baristalab/lattemeister/internal/services"
	"github.com/baristalab/lattemeister/internal/storage"
)

type App struct {
	config      *config.Config
	log         *zap.SugaredLogger
	session     services.SessionService
	submissions services.SubmissionService
	chat        services.ChatService
	reader      *bufio.Reader
}

// NewApp opens the local database and wires the stores together. The chat and
// submission stores subscribe to the session store here, before the session
// is restored, so a persisted login repopulates them on startup.
func NewApp(c *config.Config, log *zap.SugaredLogger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Errorw("error initializing database", "error", err)
		return nil, err
	}

	kv := storage.NewSQLiteKV(db)
	creds := credentials.NewKVRepository(kv)
	analyzer := analysis.New(rand.NewSource(time.Now().UnixNano()))

	session := services.NewSessionService(kv, creds, c.Latency.Login)
	submissions := services.NewSubmissionService(kv, analyzer, session, c.MediaDir, c.Latency.Upload)
	chat := services.NewChatService(kv, session, c.Latency.Reply)

	return &App{
		config:      c,
		log:         log,
		session:     session,
		submissions: submissions,
		chat:        chat,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.CurrentUser() != nil
}

func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Warnw("session restore failed", "error", err)
	}
	if u := a.session.CurrentUser(); u != nil {
		a.log.Infow("session restored", "email", u.Email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
