package bot

import (
	"sync"
	"time"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

// step identifies which input the conversation expects next from an admin.
type step string

const (
	stepNone step = ""

	stepProductName      step = "product_name"
	stepProductShortDesc step = "product_short_description"
	stepProductDesc      step = "product_description"
	stepProductPrice     step = "product_price"
	stepProductSpecs     step = "product_specifications"
	stepProductImage     step = "product_image"

	stepProjectTitle   step = "project_title"
	stepProjectDesc    step = "project_description"
	stepProjectAddress step = "project_address"
	stepProjectImages  step = "project_images"

	stepEditProductField  step = "edit_product_field"
	stepEditProductImage  step = "edit_product_image"
	stepEditProjectField  step = "edit_project_field"
	stepEditProjectImages step = "edit_project_images"
)

// session is one admin's in-flight conversation. Starting a new flow simply
// overwrites the previous accumulator, abandoning any incomplete one.
type session struct {
	step step

	product domain.Product
	project domain.Project

	editID    string
	editField string
	images    []string

	touchedAt time.Time
}

// sessionStore keeps per-admin conversation state in process memory, guarded by
// a mutex, with an inactivity TTL so abandoned flows do not pile up forever.
type sessionStore struct {
	mu  sync.Mutex
	m   map[int64]session
	ttl time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &sessionStore{
		m:   make(map[int64]session),
		ttl: ttl,
	}
}

func (s *sessionStore) get(userID int64) (session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.m[userID]
	if !ok {
		return session{}, false
	}

	if time.Since(sess.touchedAt) > s.ttl {
		delete(s.m, userID)
		return session{}, false
	}

	return sess, true
}

func (s *sessionStore) put(userID int64, sess session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.touchedAt = time.Now()
	s.m[userID] = sess

	// Lazy sweep keeps the map bounded without a janitor goroutine.
	for id, old := range s.m {
		if time.Since(old.touchedAt) > s.ttl {
			delete(s.m, id)
		}
	}
}

func (s *sessionStore) clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, userID)
}
