package details

import (
	"slices"
	"strings"
	"time"
)

// Detail es el contenido clínico específico de un registro médico.
//
// Las implementaciones son valores inmutables construidos por la Factory. Un
// literal escrito a mano no lleva la marca built y CheckBuilt lo rechaza.
type Detail interface {
	Kind() MedicalRecordType
	Validate(today time.Time) error
	CanCorrect(previous Detail) (bool, error)
	ApplyAction(current MedicalRecordStatus, action RecordAction) (StatusChangeResult, error)

	isDetail()
	constructed() bool
}

// built marca las instancias que salieron de la Factory (y pasaron Validate).
type built struct {
	ok bool
}

func (b built) constructed() bool { return b.ok }

var (
	_ Detail = AllergyDetails{}
	_ Detail = ConsultationDetails{}
	_ Detail = DocumentDetails{}
	_ Detail = VaccineDetails{}
	_ Detail = WeightDetails{}
	_ Detail = DiagnosisDetails{}
	_ Detail = TreatmentDetails{}
	_ Detail = SurgeryDetails{}
	_ Detail = HospitalizationDetails{}
)

// day trunca al día calendario UTC: un mismo instante cae en el mismo día
// venga con la zona del reloj o como timestamptz de Postgres.
func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func afterDay(a, b time.Time) bool  { return day(a).After(day(b)) }
func beforeDay(a, b time.Time) bool { return day(a).Before(day(b)) }

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneInt64(n *int64) *int64 {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return slices.Clone(in)
}
