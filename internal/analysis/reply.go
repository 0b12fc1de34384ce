package analysis

import (
	"fmt"

	"github.com/baristalab/lattemeister/internal/models"
)

// WelcomeMessage seeds every fresh chat log.
const WelcomeMessage = "Welcome to Latte Art Meister! Upload your latte art, and I'll analyze it for you."

// noSubmissionReply is returned when the user chats without picking a submission.
const noSubmissionReply = "Hello! Upload a latte art image, and I can provide specific feedback to help you improve."

// Reply renders the assistant's answer about a submission. The introductory
// clause is picked by score bracket; brackets are inclusive-lower and
// exclusive-upper, except the top one which is unbounded above. Total over
// any score, so out-of-range values still get an answer.
func Reply(sub *models.LatteSubmission) string {
	if sub == nil {
		return noSubmissionReply
	}

	switch {
	case sub.Score >= 90:
		return fmt.Sprintf("Excellent %s pattern! %s Your technique is at a professional level. The symmetry and definition are outstanding. Score: %d/100",
			sub.PatternType, sub.Feedback, sub.Score)
	case sub.Score >= 80:
		return fmt.Sprintf("Very good %s! %s You're showing strong skills. With a bit more practice on the fine details, you could reach professional quality. Score: %d/100",
			sub.PatternType, sub.Feedback, sub.Score)
	case sub.Score >= 70:
		return fmt.Sprintf("Good attempt at a %s. %s Your basic technique is solid, but there's room for improvement in symmetry and definition. Score: %d/100",
			sub.PatternType, sub.Feedback, sub.Score)
	default:
		return fmt.Sprintf("I see you're working on a %s pattern. %s Focus on milk texture and pouring speed to achieve better definition. Score: %d/100",
			sub.PatternType, sub.Feedback, sub.Score)
	}
}
