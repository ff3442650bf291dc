package app

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// AddAgendaPoint appends a point to the meeting agenda
func (s *State) AddAgendaPoint(point string) (Notice, error) {
	point, err := requireText(point, "Agenda point cannot be empty.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.agenda.Append(point)
	s.agendaUndo.Push(point)
	s.logger.Debug("agenda point added", zap.String("point", point))

	return success(fmt.Sprintf("Added: '%s'. Total points: %d", point, s.agenda.Len())), nil
}

// UndoAgendaPoint removes the most recently added agenda point
func (s *State) UndoAgendaPoint() (Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.agendaUndo.Pop()
	if !ok {
		return Notice{}, fail(ErrNothingToUndo, "No agenda point to undo.")
	}
	s.agenda.RemoveByValue(removed)
	s.logger.Debug("agenda point undone", zap.String("point", removed))

	return success(fmt.Sprintf("Undo successful: '%s'. Remaining points: %d", removed, s.agenda.Len())), nil
}

// SearchAgenda reports whether point is on the agenda
func (s *State) SearchAgenda(point string) Notice {
	point = strings.TrimSpace(point)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.agenda.Contains(point) {
		return info("Search Result", fmt.Sprintf("Found: '%s'", point))
	}
	return info("Search Result", "Not Found")
}

// Agenda returns the agenda points in the order they were added
func (s *State) Agenda() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agenda.ToSlice()
}
