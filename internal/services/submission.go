package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baristalab/lattemeister/internal/analysis"
	"github.com/baristalab/lattemeister/internal/common"
	"github.com/baristalab/lattemeister/internal/filex"
	"github.com/baristalab/lattemeister/internal/models"
	"github.com/baristalab/lattemeister/internal/storage"
)

// SubmissionService owns the active user's submission list plus the two
// transient pending-artifact slots (a drawn pattern and a reference image)
// consumed by the next upload.
//
// Contract:
//   - UploadImage requires an active session (common.ErrNotAuthenticated
//     otherwise), holds the loading flag across a simulated processing delay,
//     appends the analyzed submission in insertion order, persists the full
//     list, and clears both pending slots. Uploads are serialized so the
//     persisted order matches completion order.
//   - The pending slots accept any non-empty value and overwrite freely;
//     they are never persisted.
//   - GetSubmissionByID is a linear lookup and never fails; absence is
//     reported through the second return value.
type SubmissionService interface {
	SetDrawingImage(dataURL string)
	SetReferenceImage(path string)
	PendingDrawingURL() string
	PendingReferenceURL() string
	UploadImage(ctx context.Context, imagePath, drawingURL, referenceURL string) (*models.LatteSubmission, error)
	SetCurrentSubmission(sub *models.LatteSubmission)
	CurrentSubmission() *models.LatteSubmission
	GetSubmissionByID(id string) (*models.LatteSubmission, bool)
	Submissions() []models.LatteSubmission
	History() []models.LatteSubmission
	IsLoading() bool
}

type submissionService struct {
	store    storage.KV
	analyzer *analysis.Analyzer
	mediaDir string
	delay    time.Duration

	// uploadMu serializes UploadImage end to end; mu guards the fields below.
	uploadMu sync.Mutex
	mu       sync.Mutex

	user      *models.User
	subs      []models.LatteSubmission
	current   *models.LatteSubmission
	drawing   string
	reference string
	loading   bool
}

// NewSubmissionService constructs a SubmissionService and subscribes it to
// session changes, so the visible list always belongs to the active user.
func NewSubmissionService(store storage.KV, analyzer *analysis.Analyzer, session SessionService, mediaDir string, delay time.Duration) SubmissionService {
	s := &submissionService{store: store, analyzer: analyzer, mediaDir: mediaDir, delay: delay}
	session.Subscribe(s.onSessionChange)
	return s
}

// onSessionChange swaps the visible data set. A missing or unreadable blob
// simply leaves the list empty; persisted state is never modified here.
func (s *submissionService) onSessionChange(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = u
	s.subs = nil
	s.current = nil
	if u == nil {
		return
	}

	raw, err := s.store.Get(context.Background(), storage.SubmissionsKey(u.ID))
	if err != nil || raw == nil {
		return
	}
	var subs []models.LatteSubmission
	if err := json.Unmarshal(raw, &subs); err == nil {
		s.subs = subs
	}
}

func (s *submissionService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *submissionService) persist(ctx context.Context, userID string, subs []models.LatteSubmission) error {
	raw, err := json.Marshal(subs)
	if err != nil {
		return fmt.Errorf("failed to encode submissions: %w", err)
	}
	if err := s.store.Set(ctx, storage.SubmissionsKey(userID), raw); err != nil {
		return fmt.Errorf("failed to persist submissions: %w", err)
	}
	return nil
}

func (s *submissionService) SetDrawingImage(dataURL string) {
	if dataURL == "" {
		return
	}
	s.mu.Lock()
	s.drawing = dataURL
	s.mu.Unlock()
}

func (s *submissionService) SetReferenceImage(path string) {
	if path == "" {
		return
	}
	s.mu.Lock()
	s.reference = path
	s.mu.Unlock()
}

func (s *submissionService) PendingDrawingURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawing
}

func (s *submissionService) PendingReferenceURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reference
}

func (s *submissionService) UploadImage(ctx context.Context, imagePath, drawingURL, referenceURL string) (*models.LatteSubmission, error) {
	s.uploadMu.Lock()
	defer s.uploadMu.Unlock()

	s.mu.Lock()
	user := s.user
	s.mu.Unlock()
	if user == nil {
		return nil, common.ErrNotAuthenticated
	}

	s.setLoading(true)
	defer s.setLoading(false)

	time.Sleep(s.delay)

	id := uuid.NewString()
	imageURL, err := filex.StoreMedia(s.mediaDir, user.ID, id, imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	result := s.analyzer.Analyze(drawingURL != "" || referenceURL != "")
	sub := models.LatteSubmission{
		ID:                 id,
		UserID:             user.ID,
		ImageURL:           imageURL,
		PatternType:        result.Pattern,
		Score:              result.Score,
		Feedback:           result.Feedback,
		CreatedAt:          time.Now(),
		DrawingImageURL:    drawingURL,
		ReferenceImageURL:  referenceURL,
		ComparisonFeedback: result.ComparisonFeedback,
	}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	snapshot := append([]models.LatteSubmission(nil), s.subs...)
	s.drawing = ""
	s.reference = ""
	s.mu.Unlock()

	if err := s.persist(ctx, user.ID, snapshot); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *submissionService) SetCurrentSubmission(sub *models.LatteSubmission) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub == nil {
		s.current = nil
		return
	}
	cp := *sub
	s.current = &cp
}

func (s *submissionService) CurrentSubmission() *models.LatteSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

func (s *submissionService) GetSubmissionByID(id string) (*models.LatteSubmission, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subs {
		if sub.ID == id {
			cp := sub
			return &cp, true
		}
	}
	return nil, false
}

// Submissions returns the list in insertion order.
func (s *submissionService) Submissions() []models.LatteSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.LatteSubmission(nil), s.subs...)
}

// History returns the list newest-first; equal timestamps keep their
// insertion order.
func (s *submissionService) History() []models.LatteSubmission {
	subs := s.Submissions()
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	return subs
}

func (s *submissionService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
