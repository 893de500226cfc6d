package details

import (
	"fmt"
	"sort"
)

// transitionTable: estado actual -> acción -> estado nuevo.
// Lo que no está en la tabla es una transición inválida; no hay fallback.
type transitionTable map[MedicalRecordStatus]map[RecordAction]MedicalRecordStatus

func (t transitionTable) apply(kind MedicalRecordType, current MedicalRecordStatus, action RecordAction) (StatusChangeResult, error) {
	next, ok := t[current][action]
	if !ok {
		return StatusChangeResult{}, &TransitionError{Kind: kind, From: current, Action: action}
	}
	return StatusChangeResult{previous: current, current: next}, nil
}

func (t transitionTable) actionsFrom(current MedicalRecordStatus) []RecordAction {
	out := make([]RecordAction, 0, len(t[current]))
	for a := range t[current] {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var treatmentTransitions = transitionTable{
	StatusPending: {
		ActionActivate: StatusActive,
	},
	StatusActive: {
		ActionSuspend: StatusCancelled,
		ActionFinish:  StatusFinished,
	},
	StatusCancelled: {
		ActionReactive: StatusActive,
	},
}

var surgeryTransitions = transitionTable{
	StatusPending: {
		ActionActivate:   StatusActive,
		ActionSuspend:    StatusCancelled,
		ActionMarkNoShow: StatusCancelled,
	},
	StatusActive: {
		ActionComplete: StatusFinished,
	},
}

var hospitalizationTransitions = transitionTable{
	StatusPending: {
		ActionActivate:   StatusActive,
		ActionMarkNoShow: StatusCancelled,
	},
	StatusActive: {
		ActionDischarge: StatusFinished,
	},
}

func rejectStatusAction(kind MedicalRecordType) (StatusChangeResult, error) {
	return StatusChangeResult{}, fmt.Errorf("%w: a status-less record kind (%s) cannot receive a status action", ErrUnsupportedOperation, kind)
}
