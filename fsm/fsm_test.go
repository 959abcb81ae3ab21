package fsm

import (
	"testing"
)

const (
	testName = "fsm_test"

	statePending  = State("state_pending")
	stateApplied  = State("state_applied")
	stateCanceled = State("state_canceled")

	eventTouch  = Event("event_touch")
	eventApply  = Event("event_apply")
	eventCancel = Event("event_cancel")
)

var (
	testingFSM *FSM

	testingEvents = []EventDesc{
		// Self loop
		{Name: eventTouch, SrcState: []State{statePending}, DstState: statePending},

		// Terminal transitions
		{Name: eventApply, SrcState: []State{statePending}, DstState: stateApplied},
		{Name: eventCancel, SrcState: []State{statePending}, DstState: stateCanceled},
	}
)

func init() {
	testingFSM = MustNewFSM(
		testName,
		statePending,
		testingEvents,
	)
}

func compareRecoverStr(t *testing.T, r interface{}, assertion string) {
	if r == nil {
		return
	}
	msg, ok := r.(string)
	if !ok {
		t.Error("not asserted recover:", r)
	}
	if msg != assertion {
		t.Error("not asserted recover:", msg)
	}
}

func TestMustNewFSM_EmptyName_Panic(t *testing.T) {
	defer func() {
		compareRecoverStr(t, recover(), "machine name cannot be empty")
	}()
	MustNewFSM("", statePending, testingEvents)
	t.Error("did not panic")
}

func TestMustNewFSM_EmptyInitialState_Panic(t *testing.T) {
	defer func() {
		compareRecoverStr(t, recover(), "initial state cannot be empty")
	}()
	MustNewFSM(testName, "", testingEvents)
	t.Error("did not panic")
}

func TestMustNewFSM_EmptyEvents_Panic(t *testing.T) {
	defer func() {
		compareRecoverStr(t, recover(), "cannot init fsm with empty events")
	}()
	MustNewFSM(testName, statePending, nil)
	t.Error("did not panic")
}

func TestMustNewFSM_DuplicateEvent_Panic(t *testing.T) {
	defer func() {
		compareRecoverStr(t, recover(), "duplicate event \"event_touch\"")
	}()
	MustNewFSM(testName, statePending, []EventDesc{
		{Name: eventTouch, SrcState: []State{statePending}, DstState: statePending},
		{Name: eventTouch, SrcState: []State{statePending}, DstState: stateApplied},
	})
	t.Error("did not panic")
}

func TestFSM_Name(t *testing.T) {
	if testingFSM.Name() != testName {
		t.Error("invalid machine name")
	}
}

func TestFSM_InitialState(t *testing.T) {
	if testingFSM.InitialState() != statePending {
		t.Error("invalid initial state")
	}
}

func TestFSM_Next(t *testing.T) {
	next, err := testingFSM.Next(statePending, eventTouch)
	if err != nil {
		t.Error("unexpected error on self loop:", err)
	}
	if next != statePending {
		t.Error("self loop must keep state, got:", next)
	}

	next, err = testingFSM.Next(statePending, eventApply)
	if err != nil {
		t.Error("unexpected error on terminal transition:", err)
	}
	if next != stateApplied {
		t.Error("expected applied state, got:", next)
	}
}

func TestFSM_Next_FromFinState(t *testing.T) {
	for _, event := range []Event{eventTouch, eventApply, eventCancel} {
		if _, err := testingFSM.Next(stateApplied, event); err == nil {
			t.Errorf("event \"%s\" must be rejected from a final state", event)
		}
	}
}

func TestFSM_CanTrigger(t *testing.T) {
	if !testingFSM.CanTrigger(statePending, eventApply) {
		t.Error("expected transition pending + apply")
	}
	if testingFSM.CanTrigger(stateApplied, eventApply) {
		t.Error("unexpected transition applied + apply")
	}
}

func TestFSM_IsFinState(t *testing.T) {
	if testingFSM.IsFinState(statePending) {
		t.Error("pending is not a final state")
	}
	if !testingFSM.IsFinState(stateApplied) {
		t.Error("applied must be a final state")
	}
	if !testingFSM.IsFinState(stateCanceled) {
		t.Error("canceled must be a final state")
	}
}
