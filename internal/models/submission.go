package models

import "time"

// LattePattern classifies the latte art motif detected in a submission.
type LattePattern string

const (
	PatternHeart   LattePattern = "Heart"
	PatternRosetta LattePattern = "Rosetta"
	PatternTulip   LattePattern = "Tulip"
	PatternSwan    LattePattern = "Swan"
	// PatternUnknown is a valid model value but the analyzer never produces it.
	PatternUnknown LattePattern = "Unknown"
)

// LatteSubmission is one analyzed upload. Submissions are immutable once
// created and owned by exactly one user. The three comparison fields are set
// together: ComparisonFeedback is present iff a drawing or reference image
// accompanied the upload.
type LatteSubmission struct {
	ID                 string       `json:"id"`
	UserID             string       `json:"userId"`
	ImageURL           string       `json:"imageUrl"`
	PatternType        LattePattern `json:"patternType"`
	Score              int          `json:"score"`
	Feedback           string       `json:"feedback"`
	CreatedAt          time.Time    `json:"createdAt"`
	DrawingImageURL    string       `json:"drawingImageUrl,omitempty"`
	ReferenceImageURL  string       `json:"referenceImageUrl,omitempty"`
	ComparisonFeedback string       `json:"comparisonFeedback,omitempty"`
}

// HasComparison reports whether the submission was created with comparison
// material attached.
func (s LatteSubmission) HasComparison() bool {
	return s.DrawingImageURL != "" || s.ReferenceImageURL != ""
}
