// Package analysis is the mock stand-in for a real latte art scoring model.
// Results have a deterministic shape but randomly sampled content: a pattern
// label, an integer score, and feedback text drawn from fixed pools. The
// random source is injectable so tests can pin exact outputs.
package analysis

import (
	"math/rand"
	"sync"

	"github.com/baristalab/lattemeister/internal/models"
)

// patterns the analyzer can report. PatternUnknown is deliberately absent.
var patterns = []models.LattePattern{
	models.PatternHeart,
	models.PatternRosetta,
	models.PatternTulip,
	models.PatternSwan,
}

var feedbackPool = []string{
	"The contrast between the crema and milk could be improved for better definition.",
	"The symmetry is slightly off, consider pouring more slowly at the beginning.",
	"The pattern is well-defined but could be centered better in the cup.",
	"Good milk texture, but the pattern edges are a bit blurry. Try working on your wrist control.",
	"Excellent definition and symmetry! The positioning in the cup is perfect.",
}

var comparisonPool = []string{
	"Compared with your reference, the pour starts well but drifts off-center as the pattern develops.",
	"Your result is close to the target shape, though the layers come out thinner than in the reference.",
	"The outline matches the reference nicely; the interior detail needs a steadier hand.",
	"Relative to your sketch, the pattern sits lower in the cup. Start the detail pour a little earlier.",
}

// Result is one sampled analysis. ComparisonFeedback is empty unless the
// analysis was requested with comparison material.
type Result struct {
	Pattern            models.LattePattern
	Score              int
	Feedback           string
	ComparisonFeedback string
}

// Analyzer samples analysis results from the fixed pools.
type Analyzer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New constructs an Analyzer over the given random source.
func New(src rand.Source) *Analyzer {
	return &Analyzer{rnd: rand.New(src)}
}

// Analyze produces one sampled result. The score is uniform over [60,100].
// When withComparison is set, a comparison remark is sampled as well.
func (a *Analyzer) Analyze(withComparison bool) Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := Result{
		Pattern:  patterns[a.rnd.Intn(len(patterns))],
		Score:    a.rnd.Intn(41) + 60,
		Feedback: feedbackPool[a.rnd.Intn(len(feedbackPool))],
	}
	if withComparison {
		r.ComparisonFeedback = comparisonPool[a.rnd.Intn(len(comparisonPool))]
	}
	return r
}
