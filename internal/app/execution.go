package app

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// SchedulePerformance appends a performance to the execution-day schedule
func (s *State) SchedulePerformance(performance string) (Notice, error) {
	performance, err := requireText(performance, "Performance cannot be empty.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedule.Append(performance)
	s.logger.Debug("performance scheduled", zap.String("performance", performance))

	return success(fmt.Sprintf("Performance scheduled: '%s'. Queue size: %d", performance, s.schedule.Len())), nil
}

// NextScheduled takes the next performance off the schedule
func (s *State) NextScheduled() (Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now, ok := s.schedule.PopFront()
	if !ok {
		return Notice{}, fail(ErrNothingScheduled, "No performances scheduled.")
	}
	s.logger.Debug("now playing", zap.String("performance", now))

	return info("Now Playing", fmt.Sprintf("Now: %s. Remaining in queue: %d", now, s.schedule.Len())), nil
}

// DeletePerformance removes the first scheduled performance with the given name
func (s *State) DeletePerformance(performance string) (Notice, error) {
	performance, err := requireText(performance, "Enter performance name to delete.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.schedule.RemoveByValue(performance) {
		return Notice{}, fail(ErrPerformanceNotFound, fmt.Sprintf("Performance '%s' not found in the schedule.", performance))
	}
	s.logger.Debug("performance deleted", zap.String("performance", performance))

	return success(fmt.Sprintf("Deleted performance: '%s'.", performance)), nil
}

// InsertPerformanceAfter inserts a last-minute performance directly after
// another one. If that one is not scheduled the new performance goes last.
func (s *State) InsertPerformanceAfter(performance, after string) (Notice, error) {
	performance, err := requireText(performance, "New performance cannot be empty.")
	if err != nil {
		return Notice{}, err
	}
	after = strings.TrimSpace(after)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule.InsertAfter(after, performance) {
		s.logger.Debug("performance inserted", zap.String("performance", performance), zap.String("after", after))
		return success(fmt.Sprintf("Inserted '%s' after '%s'.", performance, after)), nil
	}

	s.schedule.Append(performance)
	s.logger.Debug("performance appended", zap.String("performance", performance), zap.String("missing", after))
	return info("Info", fmt.Sprintf("'%s' not found in current queue. Adding '%s' at end.", after, performance)), nil
}

// AssignVolunteer assigns a duty to a volunteer, replacing any earlier duty
func (s *State) AssignVolunteer(name, duty string) (Notice, error) {
	name, duty, err := requirePair(name, duty, "Name and duty cannot be empty.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.volunteers.Set(name, duty)
	s.logger.Debug("volunteer assigned", zap.String("name", name), zap.String("duty", duty))

	return success(fmt.Sprintf("Volunteer '%s' assigned duty '%s'.", name, duty)), nil
}

// AddFeedback records an audience rating between MinRating and MaxRating
func (s *State) AddFeedback(ratingText string) (Notice, error) {
	rating, err := parseNumber(ratingText, "Invalid input. Please enter a number.")
	if err != nil {
		return Notice{}, err
	}
	if rating < MinRating || rating > MaxRating {
		return Notice{}, &InputError{Msg: fmt.Sprintf("Rating must be between %d and %d.", MinRating, MaxRating)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.feedback.Insert(rating)
	s.logger.Debug("feedback added", zap.Int("rating", rating))

	return success("Feedback added."), nil
}

// FeedbackSummary lists the ratings in ascending order with their average
func (s *State) FeedbackSummary() Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	ratings := s.feedback.InOrder()
	if len(ratings) == 0 {
		return info("Feedback Summary", "No feedback ratings yet.")
	}

	values := make([]float64, len(ratings))
	shown := make([]string, len(ratings))
	for i, r := range ratings {
		values[i] = float64(r)
		shown[i] = strconv.Itoa(r)
	}

	return info("Feedback Summary", fmt.Sprintf("Ratings: [%s]\nAverage Rating: %.2f",
		strings.Join(shown, ", "), stat.Mean(values, nil)))
}

// Schedule returns the execution-day schedule in running order
func (s *State) Schedule() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedule.ToSlice()
}

// Volunteers returns name -> duty assignments in first-assigned order
func (s *State) Volunteers() []Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return assignments(s.volunteers)
}
