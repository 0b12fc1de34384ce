package services

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/baristalab/lattemeister/internal/analysis"
	"github.com/baristalab/lattemeister/internal/repositories/credentials"
	"github.com/baristalab/lattemeister/internal/storage"
)

// ---- helpers ----

type fixture struct {
	kv          *storage.MemoryKV
	session     SessionService
	submissions SubmissionService
	chat        ChatService
	mediaDir    string
}

// newFixture wires the three stores over a fresh in-memory KV with zero
// simulated latency. Pass a non-nil kv to simulate a restart over existing
// persisted state.
func newFixture(t *testing.T, kv *storage.MemoryKV) *fixture {
	t.Helper()

	if kv == nil {
		kv = storage.NewMemoryKV()
	}
	mediaDir := t.TempDir()

	creds := credentials.NewKVRepository(kv)
	analyzer := analysis.New(rand.NewSource(1))

	session := NewSessionService(kv, creds, 0)
	submissions := NewSubmissionService(kv, analyzer, session, mediaDir, 0)
	chat := NewChatService(kv, session, 0)

	return &fixture{
		kv:          kv,
		session:     session,
		submissions: submissions,
		chat:        chat,
		mediaDir:    mediaDir,
	}
}

func newChatFixtureWithDelay(t *testing.T, replyDelay time.Duration) *fixture {
	t.Helper()

	kv := storage.NewMemoryKV()
	creds := credentials.NewKVRepository(kv)
	analyzer := analysis.New(rand.NewSource(1))

	session := NewSessionService(kv, creds, 0)
	submissions := NewSubmissionService(kv, analyzer, session, t.TempDir(), 0)
	chat := NewChatService(kv, session, replyDelay)

	return &fixture{kv: kv, session: session, submissions: submissions, chat: chat}
}

// writeImage creates a small file standing in for an uploaded photo.
func writeImage(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("not really a jpeg"), 0o660))
	return path
}
