// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"nutritrack/internal/domain"
)

type mealKey struct {
	userID int64
	day    string
}

// DB implements an in-memory database storage.
type DB struct {
	mu          sync.Mutex
	weights     []domain.WeightEntry
	waterEvents []domain.WaterEvent
	users       []*domain.User
	sessions    map[string]*domain.Session
	meals       map[mealKey]*domain.DayMeals
	foods       map[string]domain.FoodItem
	profiles    map[int64]domain.Profile

	weightIDCounter int64
	waterIDCounter  int64
	userIDCounter   int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
		meals:    make(map[mealKey]*domain.DayMeals),
		foods:    make(map[string]domain.FoodItem),
		profiles: make(map[int64]domain.Profile),
	}
}

// Ensure interfaces are met.
var (
	_ domain.WeightRepository  = (*DB)(nil)
	_ domain.WaterRepository   = (*DB)(nil)
	_ domain.UserRepository    = (*DB)(nil)
	_ domain.MealRepository    = (*DB)(nil)
	_ domain.FoodRepository    = (*DB)(nil)
	_ domain.ProfileRepository = (*DB)(nil)
	_ domain.SessionRepository = (*SessionRepo)(nil)
)

func dayBounds(localDay string) (time.Time, time.Time, error) {
	dayStart, err := time.ParseInLocation(domain.DayLayout, localDay, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return dayStart.UTC(), dayStart.Add(24 * time.Hour).UTC(), nil
}

// --- WeightRepository ---

// AddWeightEvent adds a weight event.
func (db *DB) AddWeightEvent(_ context.Context, userID int64, value float64, unit domain.WeightUnit, createdAt time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.weightIDCounter++
	id := db.weightIDCounter
	db.weights = append(db.weights, domain.WeightEntry{
		ID:        id,
		UserID:    userID,
		Value:     value,
		Unit:      unit,
		CreatedAt: createdAt.UTC(),
	})
	return id, nil
}

// DeleteLatestWeightEvent deletes the user's most recent weight event.
func (db *DB) DeleteLatestWeightEvent(_ context.Context, userID int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	lastIdx := -1
	for i, w := range db.weights {
		if w.UserID != userID {
			continue
		}
		if lastIdx == -1 || w.CreatedAt.After(db.weights[lastIdx].CreatedAt) {
			lastIdx = i
		}
	}
	if lastIdx == -1 {
		return false, nil
	}
	db.weights = append(db.weights[:lastIdx], db.weights[lastIdx+1:]...)
	return true, nil
}

// LatestWeightForLocalDay returns the latest weight for the given day.
func (db *DB) LatestWeightForLocalDay(_ context.Context, userID int64, localDay string) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	start, end, err := dayBounds(localDay)
	if err != nil {
		return nil, err
	}

	var latest *domain.WeightEntry
	for i := range db.weights {
		w := &db.weights[i]
		if w.UserID != userID || w.CreatedAt.Before(start) || !w.CreatedAt.Before(end) {
			continue
		}
		if latest == nil || w.CreatedAt.After(latest.CreatedAt) {
			latest = w
		}
	}
	if latest == nil {
		return nil, nil
	}
	ret := *latest
	ret.Day = localDay
	return &ret, nil
}

// ListRecentWeightEvents lists the user's most recent weight events.
func (db *DB) ListRecentWeightEvents(_ context.Context, userID int64, limit int) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WeightEntry, 0, len(db.weights))
	for _, w := range db.weights {
		if w.UserID == userID {
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	for i := range result {
		result[i].Day = domain.LocalDay(result[i].CreatedAt)
	}
	return result, nil
}

// --- WaterRepository ---

// AddWaterEvent caps and stores a water event under the store lock.
func (db *DB) AddWaterEvent(_ context.Context, userID int64, deltaMl float64, createdAt time.Time) (*domain.WaterEvent, float64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	total, err := db.waterTotal(userID, domain.LocalDay(createdAt))
	if err != nil {
		return nil, 0, err
	}
	applied := domain.CapWaterDelta(total, deltaMl)
	if applied == 0 {
		return nil, total, nil
	}

	db.waterIDCounter++
	e := domain.WaterEvent{
		ID:        db.waterIDCounter,
		UserID:    userID,
		DeltaMl:   applied,
		CreatedAt: createdAt.UTC(),
	}
	db.waterEvents = append(db.waterEvents, e)
	return &e, total + applied, nil
}

// DeleteWaterEvent deletes a water event by ID. Unknown IDs are ignored.
func (db *DB) DeleteWaterEvent(_ context.Context, userID int64, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, w := range db.waterEvents {
		if w.ID == id && w.UserID == userID {
			db.waterEvents = append(db.waterEvents[:i], db.waterEvents[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListRecentWaterEvents lists the user's most recent water events.
func (db *DB) ListRecentWaterEvents(_ context.Context, userID int64, limit int) ([]domain.WaterEvent, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WaterEvent, 0, len(db.waterEvents))
	for _, w := range db.waterEvents {
		if w.UserID == userID {
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// WaterTotalForLocalDay returns the total water intake in ml for the given day.
func (db *DB) WaterTotalForLocalDay(_ context.Context, userID int64, localDay string) (float64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.waterTotal(userID, localDay)
}

// waterTotal expects db.mu to be held.
func (db *DB) waterTotal(userID int64, localDay string) (float64, error) {
	start, end, err := dayBounds(localDay)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, w := range db.waterEvents {
		if w.UserID == userID && !w.CreatedAt.Before(start) && w.CreatedAt.Before(end) {
			total += w.DeltaMl
		}
	}
	return total, nil
}

// --- MealRepository ---

// LoadDay returns a copy of the user's meals for the day.
func (db *DB) LoadDay(_ context.Context, userID int64, localDay string) (domain.DayMeals, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	m, ok := db.meals[mealKey{userID, localDay}]
	if !ok {
		return domain.NewDayMeals(), nil
	}
	return m.Clone(), nil
}

// AddEntry appends an entry to a slot of the user's day.
func (db *DB) AddEntry(_ context.Context, userID int64, localDay string, slot domain.MealSlot, entry domain.FoodEntry) error {
	if !slot.Valid() {
		return errors.New("unknown meal slot")
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	k := mealKey{userID, localDay}
	m, ok := db.meals[k]
	if !ok {
		m = &domain.DayMeals{}
		db.meals[k] = m
	}
	m.Append(slot, entry)
	return nil
}

// RemoveEntry deletes an entry by ID from a slot of the user's day.
func (db *DB) RemoveEntry(_ context.Context, userID int64, localDay string, slot domain.MealSlot, entryID string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	m, ok := db.meals[mealKey{userID, localDay}]
	if !ok {
		return false, nil
	}
	var entries *[]domain.FoodEntry
	switch slot {
	case domain.Breakfast:
		entries = &m.Breakfast
	case domain.Lunch:
		entries = &m.Lunch
	case domain.Dinner:
		entries = &m.Dinner
	case domain.Snacks:
		entries = &m.Snacks
	default:
		return false, nil
	}
	for i, e := range *entries {
		if e.ID == entryID {
			*entries = append((*entries)[:i], (*entries)[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- FoodRepository ---

// UpsertFood inserts or replaces a catalog item.
func (db *DB) UpsertFood(_ context.Context, item domain.FoodItem) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.foods[item.ID] = item
	return nil
}

// GetFood returns a catalog item by ID, or nil.
func (db *DB) GetFood(_ context.Context, id string) (*domain.FoodItem, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	it, ok := db.foods[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// SearchFoods returns items whose name contains query, case-insensitively,
// ordered by name.
func (db *DB) SearchFoods(_ context.Context, query string, limit int) ([]domain.FoodItem, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	q := strings.ToLower(query)
	out := make([]domain.FoodItem, 0)
	for _, it := range db.foods {
		if strings.Contains(strings.ToLower(it.Name), q) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- ProfileRepository ---

// GetProfile returns the user's profile, or nil if none was saved.
func (db *DB) GetProfile(_ context.Context, userID int64) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	p, ok := db.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// SaveProfile inserts or replaces the user's profile.
func (db *DB) SaveProfile(_ context.Context, p domain.Profile) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	p.UpdatedAt = time.Now().UTC()
	db.profiles[p.UserID] = p
	return nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username, ignoring case.
func (db *DB) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(_ context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user. Usernames are unique ignoring case.
func (db *DB) Create(_ context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if strings.EqualFold(u.Username, username) {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// Count returns the total number of users.
func (db *DB) Count(_ context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(_ context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		IP:        ip,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		if time.Now().After(s.ExpiresAt) {
			delete(r.db.sessions, token)
			return nil, nil
		}
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(_ context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(_ context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
