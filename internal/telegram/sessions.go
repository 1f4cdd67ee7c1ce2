package telegram

import (
	"sync"

	"predictionMart/internal/finance"
)

// Sessions holds one calculator form per chat. Forms live in memory only and
// start from the defaults.
type Sessions struct {
	mu    sync.Mutex
	forms map[int64]*finance.Form
}

func NewSessions() *Sessions {
	return &Sessions{forms: map[int64]*finance.Form{}}
}

// With runs fn on the chat's form while holding the lock.
func (s *Sessions) With(chatID int64, fn func(f *finance.Form)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.forms[chatID]
	if !ok {
		f = finance.NewForm()
		s.forms[chatID] = f
	}
	fn(f)
}
