package app

import (
	"fmt"

	"go.uber.org/zap"
)

// AddItem adds a logistics item
func (s *State) AddItem(item string) (Notice, error) {
	item, err := requireText(item, "Item cannot be empty.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logistics.Append(item)
	s.logisticsUndo.Push(item)
	s.logger.Debug("logistics item added", zap.String("item", item))

	return success(fmt.Sprintf("Item added: '%s'. Total items: %d", item, s.logistics.Len())), nil
}

// UndoItem removes the most recently added logistics item
func (s *State) UndoItem() (Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.logisticsUndo.Pop()
	if !ok {
		return Notice{}, fail(ErrNothingToUndo, "No item to undo.")
	}
	s.logistics.RemoveByValue(removed)
	s.logger.Debug("logistics item undone", zap.String("item", removed))

	return success(fmt.Sprintf("Removed: '%s'. Remaining items: %d", removed, s.logistics.Len())), nil
}

// MapVendor records which vendor supplies an item
func (s *State) MapVendor(item, vendor string) (Notice, error) {
	item, vendor, err := requirePair(item, vendor, "Item and vendor are required.")
	if err != nil {
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.vendors.Set(item, vendor)
	s.logger.Debug("vendor mapped", zap.String("item", item), zap.String("vendor", vendor))

	return success(fmt.Sprintf("Mapped: %s -> %s", item, vendor)), nil
}

// Items returns the logistics items in the order they were added
func (s *State) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logistics.ToSlice()
}

// Vendors returns item -> vendor mappings in first-mapped order
func (s *State) Vendors() []Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return assignments(s.vendors)
}
