package app

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// AddRequest queues a request for the principal's approval
func (s *State) AddRequest(request string) (Notice, error) {
	request, err := requireText(request, "Request cannot be empty.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.approvals.Enqueue(request)
	s.logger.Debug("approval request queued", zap.String("request", request))

	return success(fmt.Sprintf("Request queued. Queue size: %d", s.approvals.Len())), nil
}

// SignOffRequired reports whether ApproveNext checks the principal's credentials
func (s *State) SignOffRequired() bool {
	return s.guard.Enabled()
}

// ApproveNext approves the oldest pending request. When sign-off is
// required, principal and password must match the loaded credentials.
func (s *State) ApproveNext(principal, password string) (Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.approvals.IsEmpty() {
		return Notice{}, fail(ErrNoPendingRequests, "No requests pending.")
	}

	if err := s.guard.Check(principal, password); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			s.logger.Warn("failed principal sign-off", zap.String("principal", principal))
			return Notice{}, fail(err, "Principal sign-off failed.")
		}
		return Notice{}, err
	}

	approved, _ := s.approvals.Dequeue()
	s.logger.Debug("request approved", zap.String("request", approved))

	return success(fmt.Sprintf("Approved: %s. Remaining in queue: %d", approved, s.approvals.Len())), nil
}

// PendingRequests returns the pending requests, oldest first
func (s *State) PendingRequests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.approvals.PeekAll()
}

// InsertDate records a candidate event date
func (s *State) InsertDate(date string) (Notice, error) {
	date, err := requireText(date, "Date cannot be empty.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dates.Insert(date)
	s.logger.Debug("event date inserted", zap.String("date", date))

	return success(fmt.Sprintf("Date inserted: %s", date)), nil
}

// SearchDate reports whether date has been recorded
func (s *State) SearchDate(date string) Notice {
	date = strings.TrimSpace(date)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dates.Search(date) != nil {
		return info("Search Result", "Available")
	}
	return info("Search Result", "Not Available")
}

// EventDates returns all recorded dates in lexicographic order
func (s *State) EventDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dates.InOrder()
}
