package details

import (
	"math"
	"time"
)

type WeightUnit string

const (
	WeightUnitKilograms WeightUnit = "KG"
	WeightUnitGrams     WeightUnit = "G"
	WeightUnitPounds    WeightUnit = "LB"
)

var validWeightUnits = map[WeightUnit]bool{
	WeightUnitKilograms: true,
	WeightUnitGrams:     true,
	WeightUnitPounds:    true,
}

type WeightFields struct {
	Value float64    `json:"value"`
	Unit  WeightUnit `json:"unit"`
}

type WeightDetails struct {
	f WeightFields
	built
}

func (WeightDetails) isDetail() {}

func (WeightDetails) Kind() MedicalRecordType { return TypeWeight }

func (d WeightDetails) Fields() WeightFields { return d.f }

func (d WeightDetails) Value() float64   { return d.f.Value }
func (d WeightDetails) Unit() WeightUnit { return d.f.Unit }

func (d WeightDetails) Validate(time.Time) error {
	if math.IsNaN(d.f.Value) || math.IsInf(d.f.Value, 0) {
		return invalid(TypeWeight, "value", "must be a finite number")
	}
	if d.f.Value <= 0 {
		return invalid(TypeWeight, "value", "must be positive")
	}
	if !validWeightUnits[d.f.Unit] {
		return invalid(TypeWeight, "unit", "is not a supported weight unit")
	}
	return nil
}

func (d WeightDetails) CanCorrect(previous Detail) (bool, error) {
	prev, ok := previous.(WeightDetails)
	if !ok {
		return false, typeMismatch(TypeWeight, previous)
	}
	return differs(
		d.f.Value == prev.f.Value,
		d.f.Unit == prev.f.Unit,
	), nil
}

func (WeightDetails) ApplyAction(MedicalRecordStatus, RecordAction) (StatusChangeResult, error) {
	return rejectStatusAction(TypeWeight)
}
