package details

import (
	"encoding/json"
	"fmt"
)

// CheckBuilt rechaza un detalle que no salió de la Factory (por ejemplo un
// literal WeightDetails{}), que nunca pasó por Validate.
func CheckBuilt(d Detail) error {
	if d == nil {
		return fmt.Errorf("%w: nil detail", ErrUnknownRecordType)
	}
	if !d.constructed() {
		return invalid(d.Kind(), "detail", "was not built by the factory")
	}
	return nil
}

// Marshal serializa los campos de un detalle (mismo formato que acepta Factory.Create).
func Marshal(d Detail) (json.RawMessage, error) {
	var fields any
	switch v := d.(type) {
	case AllergyDetails:
		fields = v.Fields()
	case ConsultationDetails:
		fields = v.Fields()
	case DocumentDetails:
		fields = v.Fields()
	case VaccineDetails:
		fields = v.Fields()
	case WeightDetails:
		fields = v.Fields()
	case DiagnosisDetails:
		fields = v.Fields()
	case TreatmentDetails:
		fields = v.Fields()
	case SurgeryDetails:
		fields = v.Fields()
	case HospitalizationDetails:
		fields = v.Fields()
	case nil:
		return nil, fmt.Errorf("%w: nil detail", ErrUnknownRecordType)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownRecordType, d)
	}
	if err := CheckBuilt(d); err != nil {
		return nil, err
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal %s detail: %w", d.Kind(), err)
	}
	return b, nil
}
