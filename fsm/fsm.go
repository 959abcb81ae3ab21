package fsm

import (
	"fmt"
	"strings"
)

//
//  machine := fsm.MustNewFSM(name, initialState, events)
//
//  next, err := machine.Next(currentState, event)
//

type State string

func (s State) String() string {
	return string(s)
}

type Event string

func (e Event) String() string {
	return string(e)
}

func (e Event) IsEmpty() bool {
	return e.String() == ""
}

// Transition key source + event
type trKey struct {
	source State
	event  Event
}

type EventDesc struct {
	Name Event

	SrcState []State

	// Dst state after the event is accepted
	DstState State
}

// FSM is a shared transition table. It holds no current state of its own:
// callers keep one State per tracked entity and drive it through Next.
type FSM struct {
	name         string
	initialState State

	transitions map[trKey]State

	// Finish states cannot be a source of any transition
	finStates map[State]bool
}

func MustNewFSM(machineName string, initialState State, events []EventDesc) *FSM {
	machineName = strings.TrimSpace(machineName)
	initialState = State(strings.TrimSpace(initialState.String()))

	if machineName == "" {
		panic("machine name cannot be empty")
	}

	if initialState == "" {
		panic("initial state cannot be empty")
	}

	if len(events) == 0 {
		panic("cannot init fsm with empty events")
	}

	f := &FSM{
		name:         machineName,
		initialState: initialState,
		transitions:  make(map[trKey]State),
		finStates:    make(map[State]bool),
	}

	allEvents := make(map[Event]bool)
	allSources := make(map[State]bool)
	allStates := make(map[State]bool)

	for _, event := range events {
		event.Name = Event(strings.TrimSpace(event.Name.String()))
		event.DstState = State(strings.TrimSpace(event.DstState.String()))

		if event.Name == "" {
			panic("cannot init empty event")
		}

		if event.DstState == "" {
			panic("event dst state cannot be empty")
		}

		if _, ok := allEvents[event.Name]; ok {
			panic(fmt.Sprintf("duplicate event \"%s\"", event.Name))
		}

		allEvents[event.Name] = true
		allStates[event.DstState] = true

		trimmedSourcesCounter := 0

		for _, sourceState := range event.SrcState {
			sourceState := State(strings.TrimSpace(sourceState.String()))

			if sourceState == "" {
				continue
			}

			tKey := trKey{
				sourceState,
				event.Name,
			}

			if _, ok := f.transitions[tKey]; ok {
				panic("duplicate dst for pair `source + event`")
			}

			f.transitions[tKey] = event.DstState

			allSources[sourceState] = true
			allStates[sourceState] = true
			trimmedSourcesCounter++
		}

		if trimmedSourcesCounter == 0 {
			panic("event must have minimum one source available state")
		}
	}

	if len(allStates) < 2 {
		panic("machine must contain at least two states")
	}

	for state := range allStates {
		if _, exists := allSources[state]; !exists {
			f.finStates[state] = true
		}
	}

	if len(f.finStates) == 0 {
		panic("cannot initialize machine without final states")
	}

	return f
}

// Next returns the destination state for the given current state and event,
// or an error if the transition table has no such pair.
func (f *FSM) Next(current State, event Event) (State, error) {
	dst, ok := f.transitions[trKey{current, event}]
	if !ok {
		return current, fmt.Errorf("cannot execute event \"%s\" for state \"%s\"", event, current)
	}
	return dst, nil
}

func (f *FSM) CanTrigger(current State, event Event) bool {
	_, ok := f.transitions[trKey{current, event}]
	return ok
}

func (f *FSM) Name() string {
	return f.name
}

func (f *FSM) InitialState() State {
	return f.initialState
}

func (f *FSM) IsFinState(state State) bool {
	_, exists := f.finStates[state]
	return exists
}

func (f *FSM) StatesSourcesList() (states []State) {
	var allStates = map[State]bool{}
	for trKey := range f.transitions {
		allStates[trKey.source] = true
	}

	for state := range allStates {
		states = append(states, state)
	}

	return
}
