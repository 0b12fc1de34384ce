package cli

import (
	"context"
	"os"
	"strings"
)

// Chat prompts for a message and prints the assistant's reply. The currently
// selected submission, if any, conditions the reply.
func (a *App) Chat(ctx context.Context) error {
	content, err := getSimpleText(a.reader, "Your message", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		printlnFn("Nothing to send.")
		return nil
	}

	if err := a.chat.SendMessage(ctx, content, a.submissions.CurrentSubmission()); err != nil {
		a.log.Errorw("send failed", "error", err)
		return err
	}

	msgs := a.chat.Messages()
	if len(msgs) > 0 {
		printlnFn("meister:", msgs[len(msgs)-1].Content)
	}
	return nil
}

// ClearChat resets the conversation to a single welcome message.
func (a *App) ClearChat(ctx context.Context) error {
	if err := a.chat.ClearChat(ctx); err != nil {
		a.log.Errorw("clear failed", "error", err)
		return err
	}
	printlnFn("Chat cleared.")
	return nil
}
