package details

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAllergy() AllergyFields {
	return AllergyFields{
		Allergen:        "Penicillin",
		AllergyType:     AllergyTypeMedication,
		Severity:        SeveritySevere,
		Reactions:       []string{"hives", "vomiting"},
		LifeThreatening: false,
		IdentifiedOn:    date(2026, 1, 10),
		Notes:           "observed after first dose",
	}
}

func TestAllergy_ValidFieldsAreAccepted(t *testing.T) {
	d, err := testFactory().NewAllergy(validAllergy())
	require.NoError(t, err)
	assert.Equal(t, TypeAllergy, d.Kind())
	assert.Equal(t, "Penicillin", d.Fields().Allergen)
}

func TestAllergy_Anaphylaxis(t *testing.T) {
	f := validAllergy()
	f.Severity = SeverityAnaphylaxis
	f.LifeThreatening = false

	_, err := testFactory().NewAllergy(f)
	requireInvalidField(t, err, "life_threatening")

	f.LifeThreatening = true
	_, err = testFactory().NewAllergy(f)
	require.NoError(t, err)
}

func TestAllergy_SingleFieldViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AllergyFields)
		field  string
	}{
		{"blank allergen", func(f *AllergyFields) { f.Allergen = "  " }, "allergen"},
		{"unknown type", func(f *AllergyFields) { f.AllergyType = "POLLEN" }, "allergy_type"},
		{"unknown severity", func(f *AllergyFields) { f.Severity = "" }, "severity"},
		{"no reactions", func(f *AllergyFields) { f.Reactions = nil }, "reactions"},
		{"blank reaction", func(f *AllergyFields) { f.Reactions = []string{"hives", ""} }, "reactions"},
		{"missing identification date", func(f *AllergyFields) { f.IdentifiedOn = time.Time{} }, "identified_on"},
		{"future identification date", func(f *AllergyFields) { f.IdentifiedOn = today.AddDate(0, 0, 1) }, "identified_on"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validAllergy()
			tt.mutate(&f)
			_, err := testFactory().NewAllergy(f)
			requireInvalidField(t, err, tt.field)
		})
	}
}

func TestAllergy_IdentifiedTodayIsValid(t *testing.T) {
	f := validAllergy()
	f.IdentifiedOn = today.Add(5 * time.Hour) // mismo día, más tarde
	_, err := testFactory().NewAllergy(f)
	require.NoError(t, err)
}

func TestAllergy_FirstViolationWins(t *testing.T) {
	f := validAllergy()
	f.Allergen = ""
	f.Reactions = nil
	f.Severity = SeverityAnaphylaxis

	_, err := testFactory().NewAllergy(f)
	requireInvalidField(t, err, "allergen")
	assert.Equal(t, "ALLERGY detail: allergen is required", err.Error())
}

func TestAllergy_CanCorrect(t *testing.T) {
	fac := testFactory()
	base, err := fac.NewAllergy(validAllergy())
	require.NoError(t, err)

	t.Run("self is not a correction", func(t *testing.T) {
		ok, err := base.CanCorrect(base)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("notes only is not a correction", func(t *testing.T) {
		f := validAllergy()
		f.Notes = "different notes"
		other, err := fac.NewAllergy(f)
		require.NoError(t, err)

		ok, err := other.CanCorrect(base)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("changed reactions is a correction", func(t *testing.T) {
		f := validAllergy()
		f.Reactions = []string{"hives"}
		other, err := fac.NewAllergy(f)
		require.NoError(t, err)

		ok, err := other.CanCorrect(base)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("different kind is a contract violation", func(t *testing.T) {
		w, err := fac.NewWeight(WeightFields{Value: 4.2, Unit: WeightUnitKilograms})
		require.NoError(t, err)

		_, err = base.CanCorrect(w)
		require.ErrorIs(t, err, ErrTypeMismatch)
		assert.NotErrorIs(t, err, ErrInvalidDetail)
	})

	t.Run("nil previous is a contract violation", func(t *testing.T) {
		_, err := base.CanCorrect(nil)
		require.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestAllergy_FieldsAreDefensiveCopies(t *testing.T) {
	in := validAllergy()
	d, err := testFactory().NewAllergy(in)
	require.NoError(t, err)

	in.Reactions[0] = "mutated input"
	out := d.Fields()
	out.Reactions[1] = "mutated output"

	assert.Equal(t, []string{"hives", "vomiting"}, d.Fields().Reactions)
}

func TestAllergy_ApplyActionIsUnsupported(t *testing.T) {
	d, err := testFactory().NewAllergy(validAllergy())
	require.NoError(t, err)

	res, err := d.ApplyAction(StatusActive, ActionFinish)
	require.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.Equal(t, StatusChangeResult{}, res)
}
