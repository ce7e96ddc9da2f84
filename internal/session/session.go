// Package session owns the in-memory conversation state for the active user.
package session

import (
	"palaver/internal/prompt"
	"palaver/internal/store"
)

// Session is the live conversation context: the active user, the declared
// personality, the request mode, and the transcript. Turns are append-only;
// the only wholesale mutation is Reset on a user switch.
type Session struct {
	User        string
	Personality string
	Mode        string

	transcript store.Transcript
}

// New builds a session for user, adopting a previously saved transcript when
// one exists and seeding a fresh persona declaration otherwise.
func New(user, personality string, saved store.Transcript) *Session {
	s := &Session{User: user, Personality: personality, Mode: prompt.DefaultMode}
	if len(saved) > 0 {
		s.transcript = append(store.Transcript{}, saved...)
	} else {
		s.seed()
	}
	return s
}

func (s *Session) seed() {
	s.transcript = store.Transcript{{
		Role:    store.RoleSystem,
		Content: prompt.Seed(s.Personality),
	}}
}

// AppendUser records a user turn.
func (s *Session) AppendUser(content string) {
	s.transcript = append(s.transcript, store.Message{Role: store.RoleUser, Content: content})
}

// AppendAssistant records an assistant turn.
func (s *Session) AppendAssistant(content string) {
	s.transcript = append(s.transcript, store.Message{Role: store.RoleAssistant, Content: content})
}

// Reset switches the session to user with the given transcript, seeding a
// fresh one when saved is empty. Mode carries over; it is session state, not
// user state.
func (s *Session) Reset(user string, saved store.Transcript) {
	s.User = user
	if len(saved) > 0 {
		s.transcript = append(store.Transcript{}, saved...)
		return
	}
	s.seed()
}

// Messages returns a copy of the full transcript, seed included, in
// chronological order.
func (s *Session) Messages() store.Transcript {
	return append(store.Transcript{}, s.transcript...)
}

// History returns a copy of the displayable turns, excluding the seed
// persona message at index 0.
func (s *Session) History() []store.Message {
	return append([]store.Message{}, s.transcript[1:]...)
}

// Len reports the transcript length including the seed message.
func (s *Session) Len() int { return len(s.transcript) }
