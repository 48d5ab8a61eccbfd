package services

import (
	"fmt"
	"log"
	"sync"

	"github.com/chicodelphi/nutricaoBRL/models"
	"github.com/chicodelphi/nutricaoBRL/storage"
	"github.com/chicodelphi/nutricaoBRL/utils"
)

// LogService owns the authoritative in-memory daily log for today and
// mirrors every mutation to storage under its date key. A new calendar date
// starts from an empty log; nothing carries over.
type LogService struct {
	store    storage.Store
	profiles *ProfileService
	hub      *RealtimeHub // optional

	mu  sync.Mutex
	log *models.DailyLog
}

func NewLogService(store storage.Store, profiles *ProfileService, hub *RealtimeHub) *LogService {
	svc := &LogService{store: store, profiles: profiles, hub: hub}
	profiles.OnReset(svc.Invalidate)
	return svc
}

// Invalidate drops the cached log so the next access re-reads storage.
// Runs after a full data reset; without it the cache would re-persist
// meals that were just wiped.
func (s *LogService) Invalidate() {
	s.mu.Lock()
	s.log = nil
	s.mu.Unlock()
}

// LoadForToday returns today's log, reading it from storage on first access
// or after a date rollover. Absence yields an empty log, never an error.
func (s *LogService) LoadForToday() *models.DailyLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.todayLocked()
}

func (s *LogService) todayLocked() *models.DailyLog {
	today := utils.TodayString()
	if s.log != nil && s.log.Date == today {
		return s.log
	}

	loaded := &models.DailyLog{Date: today, Meals: []models.MealEntry{}}
	found, err := s.store.Get(storage.LogKey(today), loaded)
	if err != nil {
		log.Printf("failed to read daily log, starting empty: %v", err)
	}
	if !found || loaded.Date != today {
		loaded = &models.DailyLog{Date: today, Meals: []models.MealEntry{}}
	}
	s.log = loaded
	return s.log
}

// AppendMeal prepends the entry (most recent first) and re-persists the
// whole log. Repeated foods stay distinct entries; there is no dedup.
// A persistence failure leaves the in-memory log untouched so the caller
// can retry without duplicating the entry.
func (s *LogService) AppendMeal(entry models.MealEntry) (*models.DailyLog, error) {
	s.mu.Lock()
	today := s.todayLocked()
	updated := *today
	updated.Meals = append([]models.MealEntry{entry}, today.Meals...)
	if err := s.persistLocked(&updated); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.log = &updated
	snapshot := updated
	s.mu.Unlock()

	if s.hub != nil {
		s.hub.Broadcast(LogUpdate{Type: "meal_logged", Log: &snapshot})
	}
	return &snapshot, nil
}

// AdjustWater applies a (possibly negative) delta in ml, clamped so the
// consumed total never goes below zero, and re-persists the log. A
// persistence failure leaves the consumed total unchanged.
func (s *LogService) AdjustWater(deltaMl int) (*models.DailyLog, error) {
	s.mu.Lock()
	today := s.todayLocked()
	updated := *today
	updated.WaterConsumed += deltaMl
	if updated.WaterConsumed < 0 {
		updated.WaterConsumed = 0
	}
	if err := s.persistLocked(&updated); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.log = &updated
	snapshot := updated
	s.mu.Unlock()

	if s.hub != nil {
		s.hub.Broadcast(LogUpdate{Type: "water_adjusted", Log: &snapshot})
	}
	return &snapshot, nil
}

// Totals recomputes the aggregate macros from the current meal list.
func (s *LogService) Totals() models.NutritionTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.todayLocked().Totals()
}

// persistLocked writes the full serialized log under its date key. Writes
// are suppressed while no profile exists; the in-memory mutation stands.
func (s *LogService) persistLocked(l *models.DailyLog) error {
	profile, err := s.profiles.Get()
	if err != nil {
		return fmt.Errorf("failed to check profile: %w", err)
	}
	if profile == nil {
		return nil
	}
	if err := s.store.Put(storage.LogKey(l.Date), l); err != nil {
		return fmt.Errorf("failed to persist daily log: %w", err)
	}
	return nil
}
