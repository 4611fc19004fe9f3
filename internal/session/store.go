// Package session tracks what each user was last asked across stateless
// webhook calls: the pending product category, the growing try-on and
// hairstyle selection paths, and the per-user recommendation result.
package session

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"robomua/aiysha-bot/internal/beauty"
)

// Store is the per-user session state. Starting any flow clears the other two
// pending fields, so at most one flow is ever in progress per user.
type Store interface {
	// PendingRecType is the product category awaiting a selfie, if any.
	PendingRecType(user string) (string, bool)
	SetPendingRecType(user, recType string)

	// TryOnPath is the accumulated try-on selection stack (option, brand,
	// shade), read positionally once an image arrives.
	TryOnPath(user string) []string
	PushTryOn(user, selection string)
	AppendTryOn(user, selection string)

	HairStylePath(user string) []string
	PushHairStyle(user, selection string)
	AppendHairStyle(user, selection string)

	// ClearPending drops all three pending fields for the user.
	ClearPending(user string)

	Recommendations(user string) (*beauty.Recommendations, bool)
	SetRecommendations(user string, recs *beauty.Recommendations)
	ClearRecommendations(user string)
}

type userSession struct {
	pendingRecType string
	tryOnPath      []string
	hairStylePath  []string
	recs           *beauty.Recommendations
}

// CacheStore keeps sessions in an expiring cache so idle users are evicted
// instead of accumulating for the life of the process.
type CacheStore struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

func NewCacheStore(ttl time.Duration) *CacheStore {
	return &CacheStore{cache: gocache.New(ttl, ttl)}
}

// get returns the session for user, creating it lazily on first use.
func (s *CacheStore) get(user string) *userSession {
	if v, ok := s.cache.Get(user); ok {
		return v.(*userSession)
	}
	sess := &userSession{}
	s.cache.SetDefault(user, sess)
	return sess
}

// touch resets the expiry so active conversations never vanish mid-flow.
func (s *CacheStore) touch(user string, sess *userSession) {
	s.cache.SetDefault(user, sess)
}

func (s *CacheStore) PendingRecType(user string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(user)
	return sess.pendingRecType, sess.pendingRecType != ""
}

func (s *CacheStore) SetPendingRecType(user, recType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(user)
	sess.pendingRecType = recType
	sess.tryOnPath = nil
	sess.hairStylePath = nil
	s.touch(user, sess)
}

func (s *CacheStore) TryOnPath(user string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.get(user).tryOnPath...)
}

// PushTryOn begins a try-on flow with its first selection.
func (s *CacheStore) PushTryOn(user, selection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(user)
	sess.tryOnPath = []string{selection}
	sess.pendingRecType = ""
	sess.hairStylePath = nil
	s.touch(user, sess)
}

// AppendTryOn records a further narrowing selection in an ongoing flow.
func (s *CacheStore) AppendTryOn(user, selection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(user)
	sess.tryOnPath = append(sess.tryOnPath, selection)
	s.touch(user, sess)
}

func (s *CacheStore) HairStylePath(user string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.get(user).hairStylePath...)
}

func (s *CacheStore) PushHairStyle(user, selection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(user)
	sess.hairStylePath = []string{selection}
	sess.pendingRecType = ""
	sess.tryOnPath = nil
	s.touch(user, sess)
}

func (s *CacheStore) AppendHairStyle(user, selection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(user)
	sess.hairStylePath = append(sess.hairStylePath, selection)
	s.touch(user, sess)
}

func (s *CacheStore) ClearPending(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(user)
	sess.pendingRecType = ""
	sess.tryOnPath = nil
	sess.hairStylePath = nil
	s.touch(user, sess)
}

func (s *CacheStore) Recommendations(user string) (*beauty.Recommendations, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(user)
	return sess.recs, sess.recs != nil
}

func (s *CacheStore) SetRecommendations(user string, recs *beauty.Recommendations) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(user)
	sess.recs = recs
	s.touch(user, sess)
}

func (s *CacheStore) ClearRecommendations(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(user)
	sess.recs = nil
	s.touch(user, sess)
}
