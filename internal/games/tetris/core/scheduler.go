package core

// FrameID identifies a requested frame.
type FrameID uint64

// Scheduler is the frame driver seen from the engine. The engine asks for one
// future Tick at a time and cancels the outstanding request when it restarts
// or ends.
type Scheduler interface {
	RequestFrame() FrameID
	CancelFrame(id FrameID)
}

// FrameSlot is a Scheduler holding at most one pending frame. Drivers poll
// Pending and clear the slot with Take before invoking Tick.
type FrameSlot struct {
	next    FrameID
	pending FrameID
	armed   bool
}

// RequestFrame arms the slot with a fresh id.
func (s *FrameSlot) RequestFrame() FrameID {
	s.next++
	s.pending = s.next
	s.armed = true
	return s.pending
}

// CancelFrame disarms the slot if id is the pending frame.
func (s *FrameSlot) CancelFrame(id FrameID) {
	if s.armed && s.pending == id {
		s.armed = false
	}
}

// Pending reports whether a frame is requested.
func (s *FrameSlot) Pending() bool {
	return s.armed
}

// Take consumes the pending frame. It returns false if none was requested.
func (s *FrameSlot) Take() (FrameID, bool) {
	if !s.armed {
		return 0, false
	}
	s.armed = false
	return s.pending, true
}
