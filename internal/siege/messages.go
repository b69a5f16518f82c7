package siege

// Status messages render into rows of the shared grid, wrapping at the
// field width. The cursor lives in State and is guarded by the same lock as
// everything else on the grid, so announcements never interleave with
// projectile draws.

// Announce writes text to the status area at the running cursor, skipping
// past occupied rows and leaving a blank line before a new message block.
// If the text cannot fit there it is retried from the top of the field.
// Returns false when it could not be displayed at all.
func (s *State) Announce(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, c := s.msgRow, s.msgCol
	ok := s.writeLocked(text, &r, &c, true)
	if ok {
		s.msgRow = r
	} else {
		r, c = 1, 0
		ok = s.writeLocked(text, &r, &c, false)
		if ok && r > s.msgRow {
			s.msgRow = r
		}
	}
	s.msgCol = 0
	s.frame++
	return ok
}

// AnnounceAt writes text starting at a fixed row without moving the running
// cursor. Used for the instructional banner.
func (s *State) AnnounceAt(text string, row int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := 0
	ok := s.writeLocked(text, &row, &c, false)
	s.frame++
	return ok
}

// writeLocked writes str at the cursor (*r, *c), wrapping at the field
// width and advancing *r past the wrapped rows. Rows already holding text
// are skipped first (except the two banner rows), and blankLine requests an
// empty row before the message. On overflow the cursor is restored and
// false is returned; nothing about the failure leaks into the layout.
func (s *State) writeLocked(str string, r, c *int, blankLine bool) bool {
	h := s.screen.Height()
	w := s.screen.Width()

	oldR, oldC := *r, *c
	if *r >= h || *r < 0 {
		return false
	}

	// Find a free row: one whose first cell is blank or structure wall.
	for *c == 0 {
		first := s.screen.Get(0, *r)
		if first == ' ' || first == GlyphWall {
			break
		}
		if *r == 0 || *r == 1 {
			break
		}
		*r++
		if *r >= h {
			*r = oldR
			return false
		}
	}

	// Leave an empty row between message blocks.
	if blankLine && *r > 1 && s.screen.Get(0, *r-1) != ' ' {
		*r++
		if *r >= h {
			*r = oldR
			return false
		}
	}

	for _, ch := range str {
		row := *r + *c/w
		if row >= h {
			*r, *c = oldR, oldC
			return false
		}
		s.screen.Set(*c%w, row, ch)
		*c++
	}
	*r += *c / w
	return true
}
