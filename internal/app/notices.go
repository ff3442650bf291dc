package app

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// AddAnnouncement appends an announcement
func (s *State) AddAnnouncement(msg string) (Notice, error) {
	msg, err := requireText(msg, "Announcement cannot be empty.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.announcements.Append(msg)
	s.logger.Debug("announcement added", zap.String("message", msg))

	return success(fmt.Sprintf("Announcement added: '%s'", msg)), nil
}

// RemoveAnnouncement removes the first announcement equal to msg
func (s *State) RemoveAnnouncement(msg string) (Notice, error) {
	msg = strings.TrimSpace(msg)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.announcements.RemoveByValue(msg) {
		return Notice{}, fail(ErrAnnouncementNotFound, "Announcement not found.")
	}
	s.logger.Debug("announcement removed", zap.String("message", msg))

	return success(fmt.Sprintf("Announcement removed: '%s'", msg)), nil
}

// AssignResponsibility assigns a task to a member, replacing any earlier task
func (s *State) AssignResponsibility(member, task string) (Notice, error) {
	member, task, err := requirePair(member, task, "Name and responsibility are required.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.responsibilities.Set(member, task)
	s.logger.Debug("responsibility assigned", zap.String("member", member), zap.String("task", task))

	return success(fmt.Sprintf("Assigned: %s -> %s", member, task)), nil
}

// Announcements returns the announcements in the order they were added
func (s *State) Announcements() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.announcements.ToSlice()
}

// Responsibilities returns member -> task assignments in first-assigned order
func (s *State) Responsibilities() []Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return assignments(s.responsibilities)
}
