package app

import (
	"sync"

	"go.uber.org/zap"

	"github.com/klabast/wb-services/event-manager/internal/containers"
)

// Level classifies a Notice for display
type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
)

// Notice is the message shown to the user after a successful operation
type Notice struct {
	Level Level
	Title string
	Text  string
}

// Assignment is one entry of a name -> value mapping, e.g. member -> task
type Assignment struct {
	Key   string
	Value string
}

// FlowStep is one numbered step of the event flow
type FlowStep struct {
	Step        int
	Performance string
}

// State holds every container backing the screens.
//
// It is created once by the entry point and handed to the console. All
// methods take mu, so mutations stay serialized even if callers are not.
type State struct {
	mu     sync.Mutex
	logger *zap.Logger
	guard  *Guard

	// Meeting schedule & agenda
	agenda     *containers.List[string]
	agendaUndo *containers.Stack[string]

	// Principal permission / day fixing
	approvals *containers.Queue[string]
	dates     *containers.BST[string]

	// Notices & announcements
	announcements    *containers.List[string]
	responsibilities *containers.OrderedMap[string, string]

	// Needs for execution
	logistics     *containers.List[string]
	logisticsUndo *containers.Stack[string]
	vendors       *containers.OrderedMap[string, string]

	// Rehearsal
	rehearsal  *containers.Queue[string]
	performers map[string]string
	flow       map[int]string

	// Execution day
	schedule   *containers.List[string]
	volunteers *containers.OrderedMap[string, string]
	feedback   *containers.BST[int]
}

// NewState creates an empty State. A nil logger disables logging and a nil
// guard leaves approvals unguarded.
func NewState(logger *zap.Logger, guard *Guard) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	if guard == nil {
		guard = &Guard{}
	}
	return &State{
		logger:           logger,
		guard:            guard,
		agenda:           containers.NewList[string](),
		agendaUndo:       containers.NewStack[string](),
		approvals:        containers.NewQueue[string](),
		dates:            containers.NewBST[string](),
		announcements:    containers.NewList[string](),
		responsibilities: containers.NewOrderedMap[string, string](),
		logistics:        containers.NewList[string](),
		logisticsUndo:    containers.NewStack[string](),
		vendors:          containers.NewOrderedMap[string, string](),
		rehearsal:        containers.NewQueue[string](),
		performers:       make(map[string]string),
		flow:             make(map[int]string),
		schedule:         containers.NewList[string](),
		volunteers:       containers.NewOrderedMap[string, string](),
		feedback:         containers.NewBST[int](),
	}
}

func assignments(m *containers.OrderedMap[string, string]) []Assignment {
	out := make([]Assignment, 0, m.Len())
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		out = append(out, Assignment{Key: k, Value: v})
	}
	return out
}
