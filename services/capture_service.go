package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/chicodelphi/nutricaoBRL/models"
	"github.com/chicodelphi/nutricaoBRL/utils"
)

type CaptureState string

const (
	StateIdle          CaptureState = "idle"
	StateImageSelected CaptureState = "image_selected"
	StateAnalyzing     CaptureState = "analyzing"
	StateReviewing     CaptureState = "reviewing"
)

var (
	ErrNoImageSelected  = errors.New("no image selected")
	ErrAnalysisInFlight = errors.New("analysis already in flight")
	ErrNothingToDiscard = errors.New("nothing to discard")
	ErrNoCandidate      = errors.New("no candidate to confirm")
	ErrCaptureReset     = errors.New("capture was reset")
)

// CaptureService sequences one meal capture attempt: image in, remote
// analysis, user review, then either a permanent log entry or nothing.
// Exactly one analysis may be in flight; a failed analysis returns to
// image_selected with the image retained so the user can retry.
type CaptureService struct {
	inference Inference
	logs      *LogService
	profiles  *ProfileService

	mu        sync.Mutex
	state     CaptureState
	imageURI  string // data-URI form of the held photo
	mimeType  string
	candidate *models.MealEntry
	gen       int // bumped by Reset so a stale analysis result is dropped
}

func NewCaptureService(inference Inference, logs *LogService, profiles *ProfileService) *CaptureService {
	svc := &CaptureService{
		inference: inference,
		logs:      logs,
		profiles:  profiles,
		state:     StateIdle,
	}
	profiles.OnReset(svc.Reset)
	return svc
}

// Reset abandons the current capture attempt unconditionally, including
// one whose analysis is still in flight; the late result is dropped when
// it arrives. Runs after a full data reset.
func (s *CaptureService) Reset() {
	s.mu.Lock()
	s.gen++
	s.reset()
	s.mu.Unlock()
}

func (s *CaptureService) State() CaptureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Candidate returns the entry awaiting review, nil outside reviewing.
func (s *CaptureService) Candidate() *models.MealEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.candidate == nil {
		return nil
	}
	c := *s.candidate
	return &c
}

// SelectImage holds the photo in its transportable encoded form. Selecting
// while an image is already held simply replaces it and clears any prior
// analysis result; no confirmation is asked.
func (s *CaptureService) SelectImage(data []byte, mimeType string) error {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateAnalyzing {
		return ErrAnalysisInFlight
	}
	s.imageURI = utils.EncodeImageDataURI(data, mimeType)
	s.mimeType = mimeType
	s.candidate = nil
	s.state = StateImageSelected
	return nil
}

// Analyze sends the held image to the inference service. On success the
// result plus a capture timestamp becomes the review candidate; on any
// failure the workflow drops back to image_selected and the caller retries.
func (s *CaptureService) Analyze(ctx context.Context) (*models.MealEntry, error) {
	s.mu.Lock()
	switch s.state {
	case StateAnalyzing:
		s.mu.Unlock()
		return nil, ErrAnalysisInFlight
	case StateImageSelected:
		// proceed
	default:
		s.mu.Unlock()
		return nil, ErrNoImageSelected
	}
	s.state = StateAnalyzing
	imageURI := s.imageURI
	mimeType := s.mimeType
	gen := s.gen
	s.mu.Unlock()

	vegan := false
	if profile, err := s.profiles.Get(); err == nil && profile != nil {
		vegan = profile.IsVegan
	}

	_, payload, err := utils.SplitImageDataURI(imageURI)
	var analysis *MealAnalysis
	if err == nil {
		analysis, err = s.inference.AnalyzeMealImage(ctx, MealImageRequest{
			ImageBase64: payload,
			MimeType:    mimeType,
			Vegan:       vegan,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil, ErrCaptureReset
	}
	if err != nil {
		// image retained for retry
		s.state = StateImageSelected
		return nil, err
	}

	s.candidate = &models.MealEntry{
		FoodName:    analysis.FoodName,
		Calories:    analysis.Calories,
		Protein:     analysis.Protein,
		Carbs:       analysis.Carbs,
		Fats:        analysis.Fats,
		HealthScore: analysis.HealthScore,
		Feedback:    analysis.Feedback,
		Timestamp:   time.Now(),
		ImageURL:    imageURI,
	}
	s.state = StateReviewing
	c := *s.candidate
	return &c, nil
}

// Confirm hands the reviewed candidate to the log store as a permanent
// entry and resets the workflow. When S3 is configured the photo moves
// there and the entry keeps the public URL instead of the inline data-URI.
// If the log store cannot accept the entry the candidate stays in
// reviewing so the user can confirm again.
func (s *CaptureService) Confirm() (*models.MealEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReviewing || s.candidate == nil {
		return nil, ErrNoCandidate
	}
	entry := *s.candidate

	if utils.S3Enabled() {
		if url, err := utils.UploadMealPhoto(entry.ImageURL); err == nil {
			entry.ImageURL = url
		} else {
			log.Printf("meal photo upload failed, keeping data-URI: %v", err)
		}
	}

	if _, err := s.logs.AppendMeal(entry); err != nil {
		return nil, err
	}
	s.reset()
	return &entry, nil
}

// Discard rejects the held image or reviewed candidate, clearing both.
func (s *CaptureService) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateAnalyzing:
		return ErrAnalysisInFlight
	case StateIdle:
		return ErrNothingToDiscard
	}
	s.reset()
	return nil
}

// reset requires s.mu held.
func (s *CaptureService) reset() {
	s.state = StateIdle
	s.imageURI = ""
	s.mimeType = ""
	s.candidate = nil
}
