package details

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Factory es el único camino de construcción de detalles: arma el candidato,
// corre Validate y solo lo devuelve si es válido. Los errores de validación se
// propagan tal cual (*ValidationError).
type Factory struct {
	now func() time.Time
}

func NewFactory() *Factory {
	return &Factory{now: time.Now}
}

// NewFactoryWithClock permite fijar "hoy" (tests, jobs de backfill).
func NewFactoryWithClock(now func() time.Time) *Factory {
	if now == nil {
		now = time.Now
	}
	return &Factory{now: now}
}

// Create decodifica los campos crudos (JSON) de un tipo y construye el detalle.
// Campos desconocidos se rechazan.
func (f *Factory) Create(kind MedicalRecordType, raw json.RawMessage) (Detail, error) {
	return f.build(kind, raw, f.now())
}

// Restore rehidrata un detalle persistido. Las reglas de fecha se evalúan contra
// el momento en que se registró, no contra hoy.
func (f *Factory) Restore(kind MedicalRecordType, raw json.RawMessage, recordedAt time.Time) (Detail, error) {
	return f.build(kind, raw, recordedAt)
}

func (f *Factory) build(kind MedicalRecordType, raw json.RawMessage, today time.Time) (Detail, error) {
	entry, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordType, kind)
	}
	return entry.decode(raw, today)
}

func (f *Factory) NewAllergy(in AllergyFields) (AllergyDetails, error) {
	return newAllergy(in, f.now())
}

func (f *Factory) NewConsultation(in ConsultationFields) (ConsultationDetails, error) {
	return newConsultation(in, f.now())
}

func (f *Factory) NewDocument(in DocumentFields) (DocumentDetails, error) {
	return newDocument(in, f.now())
}

func (f *Factory) NewVaccine(in VaccineFields) (VaccineDetails, error) {
	return newVaccine(in, f.now())
}

func (f *Factory) NewWeight(in WeightFields) (WeightDetails, error) {
	return newWeight(in, f.now())
}

func (f *Factory) NewDiagnosis(in DiagnosisFields) (DiagnosisDetails, error) {
	return newDiagnosis(in, f.now())
}

func (f *Factory) NewTreatment(in TreatmentFields) (TreatmentDetails, error) {
	return newTreatment(in, f.now())
}

func (f *Factory) NewSurgery(in SurgeryFields) (SurgeryDetails, error) {
	return newSurgery(in, f.now())
}

func (f *Factory) NewHospitalization(in HospitalizationFields) (HospitalizationDetails, error) {
	return newHospitalization(in, f.now())
}

func newAllergy(in AllergyFields, today time.Time) (AllergyDetails, error) {
	in.Reactions = cloneStrings(in.Reactions)
	return validated(AllergyDetails{f: in, built: built{ok: true}}, today)
}

func newConsultation(in ConsultationFields, today time.Time) (ConsultationDetails, error) {
	in.Symptoms = cloneStrings(in.Symptoms)
	in.FollowUpDate = cloneTime(in.FollowUpDate)
	return validated(ConsultationDetails{f: in, built: built{ok: true}}, today)
}

func newDocument(in DocumentFields, today time.Time) (DocumentDetails, error) {
	in.FileSizeBytes = cloneInt64(in.FileSizeBytes)
	return validated(DocumentDetails{f: in, built: built{ok: true}}, today)
}

func newVaccine(in VaccineFields, today time.Time) (VaccineDetails, error) {
	in.NextDoseDate = cloneTime(in.NextDoseDate)
	return validated(VaccineDetails{f: in, built: built{ok: true}}, today)
}

func newWeight(in WeightFields, today time.Time) (WeightDetails, error) {
	return validated(WeightDetails{f: in, built: built{ok: true}}, today)
}

func newDiagnosis(in DiagnosisFields, today time.Time) (DiagnosisDetails, error) {
	return validated(DiagnosisDetails{f: in, built: built{ok: true}}, today)
}

func newTreatment(in TreatmentFields, today time.Time) (TreatmentDetails, error) {
	in.EndDate = cloneTime(in.EndDate)
	return validated(TreatmentDetails{f: in, built: built{ok: true}}, today)
}

func newSurgery(in SurgeryFields, today time.Time) (SurgeryDetails, error) {
	return validated(SurgeryDetails{f: in, built: built{ok: true}}, today)
}

func newHospitalization(in HospitalizationFields, today time.Time) (HospitalizationDetails, error) {
	in.ExpectedDischarge = cloneTime(in.ExpectedDischarge)
	return validated(HospitalizationDetails{f: in, built: built{ok: true}}, today)
}

func validated[D Detail](d D, today time.Time) (D, error) {
	if err := d.Validate(today); err != nil {
		var zero D
		return zero, err
	}
	return d, nil
}

func decodeWith[F any, D Detail](kind MedicalRecordType, raw json.RawMessage, today time.Time, ctor func(F, time.Time) (D, error)) (Detail, error) {
	var in F
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, invalid(kind, "detail", "is malformed: "+err.Error())
	}
	d, err := ctor(in, today)
	if err != nil {
		return nil, err
	}
	return d, nil
}
