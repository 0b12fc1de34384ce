package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/baristalab/lattemeister/internal/common"
	"github.com/baristalab/lattemeister/internal/models"
)

// Upload prompts for an image path and runs it through the analyzer. Pending
// drawing/reference artifacts, if any, are attached and consumed.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to your latte art image", os.Stdout)
	if err != nil {
		return err
	}

	printlnFn("Analyzing...")
	sub, err := a.submissions.UploadImage(ctx, path,
		a.submissions.PendingDrawingURL(), a.submissions.PendingReferenceURL())
	if err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			printlnFn("Please log in before uploading.")
			return err
		}
		a.log.Errorw("upload failed", "error", err)
		return err
	}

	a.printSubmission(*sub)
	a.submissions.SetCurrentSubmission(sub)
	return nil
}

// Draw records a drawn pattern image to compare against the next upload.
func (a *App) Draw(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to your drawn pattern image", os.Stdout)
	if err != nil {
		return err
	}
	a.submissions.SetDrawingImage(path)
	printlnFn("Drawing saved; it will be compared with your next upload.")
	return nil
}

// Reference records a reference image to compare against the next upload.
func (a *App) Reference(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to the reference image", os.Stdout)
	if err != nil {
		return err
	}
	a.submissions.SetReferenceImage(path)
	printlnFn("Reference saved; it will be compared with your next upload.")
	return nil
}

// History lists the user's submissions, newest first.
func (a *App) History(ctx context.Context) error {
	subs := a.submissions.History()
	if len(subs) == 0 {
		printlnFn("No submissions yet. Try 'upload'.")
		return nil
	}
	for _, sub := range subs {
		printlnFn(fmt.Sprintf("%s  %-8s %3d/100  %s",
			sub.CreatedAt.Format("2006-01-02 15:04"), sub.PatternType, sub.Score, sub.ID))
	}
	return nil
}

// Show prints one submission in full and selects it as the chat context.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Submission id", os.Stdout)
	if err != nil {
		return err
	}

	sub, ok := a.submissions.GetSubmissionByID(id)
	if !ok {
		printlnFn("No submission with that id.")
		return nil
	}

	a.printSubmission(*sub)
	a.submissions.SetCurrentSubmission(sub)
	printlnFn("Selected for chat. Use 'chat' to discuss it.")
	return nil
}

func (a *App) printSubmission(sub models.LatteSubmission) {
	printlnFn(fmt.Sprintf("Pattern:  %s", sub.PatternType))
	printlnFn(fmt.Sprintf("Score:    %d/100", sub.Score))
	printlnFn(fmt.Sprintf("Feedback: %s", sub.Feedback))
	if sub.ComparisonFeedback != "" {
		printlnFn(fmt.Sprintf("Comparison: %s", sub.ComparisonFeedback))
	}
	printlnFn(fmt.Sprintf("Image:    %s", sub.ImageURL))
}
