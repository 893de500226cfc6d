package details

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusBearingSamples(t *testing.T) map[MedicalRecordType]Detail {
	t.Helper()
	fac := testFactory()

	tr, err := fac.NewTreatment(validTreatment())
	require.NoError(t, err)
	su, err := fac.NewSurgery(validSurgery())
	require.NoError(t, err)
	ho, err := fac.NewHospitalization(validHospitalization())
	require.NoError(t, err)

	return map[MedicalRecordType]Detail{
		TypeTreatment:       tr,
		TypeSurgery:         su,
		TypeHospitalization: ho,
	}
}

func TestApplyAction_Grid(t *testing.T) {
	allowed := map[MedicalRecordType]map[MedicalRecordStatus]map[RecordAction]MedicalRecordStatus{
		TypeTreatment: {
			StatusPending:   {ActionActivate: StatusActive},
			StatusActive:    {ActionSuspend: StatusCancelled, ActionFinish: StatusFinished},
			StatusCancelled: {ActionReactive: StatusActive},
		},
		TypeSurgery: {
			StatusPending: {ActionActivate: StatusActive, ActionSuspend: StatusCancelled, ActionMarkNoShow: StatusCancelled},
			StatusActive:  {ActionComplete: StatusFinished},
		},
		TypeHospitalization: {
			StatusPending: {ActionActivate: StatusActive, ActionMarkNoShow: StatusCancelled},
			StatusActive:  {ActionDischarge: StatusFinished},
		},
	}

	statuses := []MedicalRecordStatus{StatusPending, StatusActive, StatusFinished, StatusCancelled, StatusCorrected}
	actions := []RecordAction{ActionActivate, ActionReactive, ActionSuspend, ActionFinish, ActionMarkNoShow, ActionComplete, ActionDischarge}

	for kind, d := range statusBearingSamples(t) {
		for _, from := range statuses {
			for _, action := range actions {
				name := string(kind) + "/" + string(from) + "/" + string(action)
				t.Run(name, func(t *testing.T) {
					res, err := d.ApplyAction(from, action)

					want, ok := allowed[kind][from][action]
					if ok {
						require.NoError(t, err)
						assert.Equal(t, from, res.Previous())
						assert.Equal(t, want, res.Current())
						return
					}

					require.ErrorIs(t, err, ErrInvalidTransition)
					var te *TransitionError
					require.True(t, errors.As(err, &te))
					assert.Equal(t, kind, te.Kind)
					assert.Equal(t, from, te.From)
					assert.Equal(t, action, te.Action)
					assert.Equal(t, StatusChangeResult{}, res)
				})
			}
		}
	}
}

func TestApplyAction_CorrectedIsTerminal(t *testing.T) {
	for kind, d := range statusBearingSamples(t) {
		assert.Empty(t, AllowedActions(kind, StatusCorrected), kind)
		_, err := d.ApplyAction(StatusCorrected, ActionActivate)
		require.ErrorIs(t, err, ErrInvalidTransition, kind)
	}
}

func TestApplyAction_TransitionErrorMessage(t *testing.T) {
	d, err := testFactory().NewTreatment(validTreatment())
	require.NoError(t, err)

	_, err = d.ApplyAction(StatusFinished, ActionActivate)
	require.Error(t, err)
	assert.Equal(t, "cannot ACTIVATE a TREATMENT record that is FINISHED", err.Error())
}

func TestApplyAction_StatusLessKindsAreUnsupported(t *testing.T) {
	fac := testFactory()
	samples := []Detail{}

	a, err := fac.NewAllergy(validAllergy())
	require.NoError(t, err)
	c, err := fac.NewConsultation(validConsultation())
	require.NoError(t, err)
	doc, err := fac.NewDocument(validDocument())
	require.NoError(t, err)
	v, err := fac.NewVaccine(validVaccine())
	require.NoError(t, err)
	w, err := fac.NewWeight(WeightFields{Value: 4.2, Unit: WeightUnitKilograms})
	require.NoError(t, err)
	dg, err := fac.NewDiagnosis(validDiagnosis())
	require.NoError(t, err)
	samples = append(samples, a, c, doc, v, w, dg)

	for _, d := range samples {
		assert.False(t, IsStatusBearing(d.Kind()), d.Kind())
		assert.Empty(t, AllowedActions(d.Kind(), StatusActive))

		res, err := d.ApplyAction(StatusActive, ActionFinish)
		require.ErrorIs(t, err, ErrUnsupportedOperation, d.Kind())
		assert.NotErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, StatusChangeResult{}, res)
	}
}

func TestAllowedActions(t *testing.T) {
	assert.Equal(t, []RecordAction{ActionActivate, ActionMarkNoShow, ActionSuspend}, AllowedActions(TypeSurgery, StatusPending))
	assert.Equal(t, []RecordAction{ActionFinish, ActionSuspend}, AllowedActions(TypeTreatment, StatusActive))
	assert.Equal(t, []RecordAction{ActionDischarge}, AllowedActions(TypeHospitalization, StatusActive))
	assert.Empty(t, AllowedActions(TypeHospitalization, StatusFinished))
	assert.Empty(t, AllowedActions("NOPE", StatusPending))
}

func TestParseRecordAction(t *testing.T) {
	a, err := ParseRecordAction(" mark_no_show ")
	require.NoError(t, err)
	assert.Equal(t, ActionMarkNoShow, a)

	_, err = ParseRecordAction("PAUSE")
	require.ErrorIs(t, err, ErrUnknownAction)

	s, err := ParseRecordStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, s)

	_, err = ParseRecordStatus("")
	require.ErrorIs(t, err, ErrUnknownStatus)
}
