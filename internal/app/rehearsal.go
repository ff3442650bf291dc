package app

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// AddPerformance queues a performance for rehearsal and records its participant
func (s *State) AddPerformance(performance, participant string) (Notice, error) {
	performance, participant, err := requirePair(performance, participant,
		"Both performance and participant are required.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rehearsal.Enqueue(performance)
	s.performers[performance] = participant
	s.logger.Debug("performance queued for rehearsal",
		zap.String("performance", performance), zap.String("participant", participant))

	return success(fmt.Sprintf("Queued '%s' by '%s'. Queue size: %d",
		performance, participant, s.rehearsal.Len())), nil
}

// NextPerformance takes the next performance off the rehearsal queue
func (s *State) NextPerformance() (Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.rehearsal.Dequeue()
	if !ok {
		return Notice{}, fail(ErrNoPerformancesQueued, "No performances in queue.")
	}

	return info("Next Performance", fmt.Sprintf("Next: %s by %s. Remaining in queue: %d",
		next, s.performerOf(next), s.rehearsal.Len())), nil
}

// AddFlowStep assigns a performance to a numbered step of the event flow.
// stepText is parsed as an integer.
func (s *State) AddFlowStep(stepText, performance string) (Notice, error) {
	step, err := parseNumber(stepText, "Step must be a number.")
	if err != nil {
		return Notice{}, err
	}
	performance, err = requireText(performance, "Performance cannot be empty.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.flow[step] = performance
	s.logger.Debug("event flow step set", zap.Int("step", step), zap.String("performance", performance))

	return success(fmt.Sprintf("Event step %d -> '%s' added.", step, performance)), nil
}

// SearchFlowStep reports which performance a step is assigned to
func (s *State) SearchFlowStep(stepText string) (Notice, error) {
	step, err := parseNumber(stepText, "Step must be a number.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if performance, ok := s.flow[step]; ok {
		return info("Search Result", fmt.Sprintf("Step %d is assigned to '%s'", step, performance)), nil
	}
	return info("Search Result", fmt.Sprintf("Step %d is empty / not assigned yet.", step)), nil
}

// RehearsalQueue returns the queued performances with their participants
func (s *State) RehearsalQueue() []Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	queued := s.rehearsal.PeekAll()
	out := make([]Assignment, 0, len(queued))
	for _, p := range queued {
		out = append(out, Assignment{Key: p, Value: s.performerOf(p)})
	}
	return out
}

// FlowSteps returns the event flow sorted by step number
func (s *State) FlowSteps() []FlowStep {
	s.mu.Lock()
	defer s.mu.Unlock()

	steps := make([]int, 0, len(s.flow))
	for step := range s.flow {
		steps = append(steps, step)
	}
	slices.Sort(steps)

	out := make([]FlowStep, 0, len(steps))
	for _, step := range steps {
		out = append(out, FlowStep{Step: step, Performance: s.flow[step]})
	}
	return out
}

// performerOf must be called with s.mu held
func (s *State) performerOf(performance string) string {
	if p, ok := s.performers[performance]; ok {
		return p
	}
	return UnknownPerformer
}
