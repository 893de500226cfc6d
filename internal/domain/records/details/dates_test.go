package details

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRules_SameInstantAnyZone(t *testing.T) {
	bogota := time.FixedZone("UTC-5", -5*3600)
	instant := time.Date(2026, 10, 18, 20, 0, 0, 0, bogota) // 2026-10-19 01:00 UTC

	assert.True(t, sameDay(instant, instant.UTC()))
	assert.False(t, beforeDay(instant, instant.UTC()))
	assert.False(t, afterDay(instant.UTC(), instant))
	assert.True(t, sameDay(instant, date(2026, 10, 19)))
}

func TestFactory_CreateAndRestoreAgreeAcrossZones(t *testing.T) {
	bogota := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2026, 10, 18, 20, 0, 0, 0, bogota)
	fac := NewFactoryWithClock(func() time.Time { return now })

	consultation := func(followUp string) json.RawMessage {
		return json.RawMessage(`{"reason":"checkup","clinical_findings":"healthy","diagnosis":"none",` +
			`"treatment_plan":"none","follow_up_required":true,"follow_up_date":"` + followUp + `"}`)
	}

	t.Run("accepted on create stays valid on restore", func(t *testing.T) {
		raw := consultation("2026-10-19T00:00:00Z")

		_, err := fac.Create(TypeConsultation, raw)
		require.NoError(t, err)

		// Postgres devuelve recorded_at en otra zona que el reloj
		_, err = fac.Restore(TypeConsultation, raw, now.UTC())
		require.NoError(t, err)
	})

	t.Run("rejected on create is rejected on restore", func(t *testing.T) {
		raw := consultation("2026-10-18T00:00:00Z")

		_, err := fac.Create(TypeConsultation, raw)
		requireInvalidField(t, err, "follow_up_date")

		_, err = fac.Restore(TypeConsultation, raw, now.UTC())
		requireInvalidField(t, err, "follow_up_date")
	})
}
