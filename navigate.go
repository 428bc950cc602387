package paperbloom

// Navigation: two independent clamped cursors, one over the twelve cards and
// one over the three moments. Moving one never resets or constrains the
// other. Cursor changes are session state and reschedule the snapshot write.

// NextCard advances the card cursor, clamped at the last card, and returns
// the resulting position.
func (s *Session) NextCard() int { return s.moveCursor(func() bool { return s.cardCursor.Next() }, s.cardPos) }

// PreviousCard moves the card cursor back, clamped at zero.
func (s *Session) PreviousCard() int {
	return s.moveCursor(func() bool { return s.cardCursor.Previous() }, s.cardPos)
}

// GoToCard jumps the card cursor to i; out-of-range targets are ignored.
func (s *Session) GoToCard(i int) int {
	return s.moveCursor(func() bool { return s.cardCursor.GoTo(i) }, s.cardPos)
}

// CardCursor returns the card cursor position.
func (s *Session) CardCursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cardCursor.Pos()
}

// NextMoment advances the moment cursor, clamped at the last moment.
func (s *Session) NextMoment() int {
	return s.moveCursor(func() bool { return s.momentCursor.Next() }, s.momentPos)
}

// PreviousMoment moves the moment cursor back, clamped at zero.
func (s *Session) PreviousMoment() int {
	return s.moveCursor(func() bool { return s.momentCursor.Previous() }, s.momentPos)
}

// GoToMoment jumps the moment cursor to i; out-of-range targets are ignored.
func (s *Session) GoToMoment(i int) int {
	return s.moveCursor(func() bool { return s.momentCursor.GoTo(i) }, s.momentPos)
}

// MomentCursor returns the moment cursor position.
func (s *Session) MomentCursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.momentCursor.Pos()
}

// CurrentCard returns a copy of the card under the card cursor.
func (s *Session) CurrentCard() (Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos := s.cardCursor.Pos()
	if pos >= len(s.cards) {
		return Card{}, false
	}
	return s.cards[pos], true
}

func (s *Session) cardPos() int   { return s.cardCursor.Pos() }
func (s *Session) momentPos() int { return s.momentCursor.Pos() }

// moveCursor applies a cursor transition under the lock and schedules a
// snapshot write only when the position actually changed.
func (s *Session) moveCursor(move func() bool, pos func() int) int {
	s.mu.Lock()
	changed := move()
	out := pos()
	s.mu.Unlock()

	if changed {
		s.writer.Schedule()
	}
	return out
}
