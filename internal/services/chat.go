package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baristalab/lattemeister/internal/analysis"
	"github.com/baristalab/lattemeister/internal/models"
	"github.com/baristalab/lattemeister/internal/storage"
)

// ChatService owns the active user's ordered chat log.
//
// Contract:
//   - When a user becomes active, the persisted log is loaded; a brand-new
//     user gets a single assistant welcome message, persisted immediately.
//     Logout clears the in-memory log without touching persisted state.
//   - SendMessage appends and persists the user message first, then holds the
//     loading flag while the assistant reply is computed and appended. Sends
//     are serialized: an overlapping call waits for the in-flight reply, so
//     the log always reads user, reply, user, reply.
//   - ClearChat replaces the whole persisted log with one fresh welcome
//     message. Irreversible.
type ChatService interface {
	Messages() []models.ChatMessage
	SendMessage(ctx context.Context, content string, sub *models.LatteSubmission) error
	ClearChat(ctx context.Context) error
	IsLoading() bool
}

type chatService struct {
	store storage.KV
	delay time.Duration

	// sendMu serializes SendMessage end to end; mu guards the fields below.
	sendMu sync.Mutex
	mu     sync.Mutex

	user     *models.User
	messages []models.ChatMessage
	loading  bool
}

// NewChatService constructs a ChatService and subscribes it to session
// changes.
func NewChatService(store storage.KV, session SessionService, delay time.Duration) ChatService {
	c := &chatService{store: store, delay: delay}
	session.Subscribe(c.onSessionChange)
	return c
}

func newMessage(role models.Role, content, submissionID string) models.ChatMessage {
	return models.ChatMessage{
		ID:           uuid.NewString(),
		Role:         role,
		Content:      content,
		SubmissionID: submissionID,
		Timestamp:    time.Now(),
	}
}

func (c *chatService) onSessionChange(u *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = u
	c.messages = nil
	if u == nil {
		return
	}

	ctx := context.Background()
	raw, err := c.store.Get(ctx, storage.ChatKey(u.ID))
	if err == nil && raw != nil {
		var msgs []models.ChatMessage
		if err := json.Unmarshal(raw, &msgs); err == nil && len(msgs) > 0 {
			c.messages = msgs
			return
		}
	}

	c.messages = []models.ChatMessage{newMessage(models.RoleAssistant, analysis.WelcomeMessage, "")}
	_ = c.persistLocked(ctx, u.ID)
}

func (c *chatService) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// persistLocked writes the current log; c.mu must be held.
func (c *chatService) persistLocked(ctx context.Context, userID string) error {
	raw, err := json.Marshal(c.messages)
	if err != nil {
		return fmt.Errorf("failed to encode chat log: %w", err)
	}
	if err := c.store.Set(ctx, storage.ChatKey(userID), raw); err != nil {
		return fmt.Errorf("failed to persist chat log: %w", err)
	}
	return nil
}

func (c *chatService) append(ctx context.Context, userID string, msg models.ChatMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msg)
	return c.persistLocked(ctx, userID)
}

func (c *chatService) SendMessage(ctx context.Context, content string, sub *models.LatteSubmission) error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	c.mu.Lock()
	user := c.user
	c.mu.Unlock()
	if user == nil {
		return nil
	}

	submissionID := ""
	if sub != nil {
		submissionID = sub.ID
	}

	// The user message must be visible and persisted before the reply is
	// computed; the two appends are deliberately not atomic as a pair.
	if err := c.append(ctx, user.ID, newMessage(models.RoleUser, content, submissionID)); err != nil {
		return err
	}

	c.setLoading(true)
	defer c.setLoading(false)

	time.Sleep(c.delay)

	return c.append(ctx, user.ID, newMessage(models.RoleAssistant, analysis.Reply(sub), submissionID))
}

func (c *chatService) ClearChat(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return nil
	}

	c.messages = []models.ChatMessage{newMessage(models.RoleAssistant, analysis.WelcomeMessage, "")}
	return c.persistLocked(ctx, c.user.ID)
}

func (c *chatService) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.ChatMessage(nil), c.messages...)
}

func (c *chatService) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}
