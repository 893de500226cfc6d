package pets

import "time"

// Species define las especies atendidas.
// @Enum dog, cat, rabbit, bird, reptile, other
type Species string

const (
	SpeciesDog     Species = "dog"
	SpeciesCat     Species = "cat"
	SpeciesRabbit  Species = "rabbit"
	SpeciesBird    Species = "bird"
	SpeciesReptile Species = "reptile"
	SpeciesOther   Species = "other"
)

var validSpecies = map[Species]bool{
	SpeciesDog:     true,
	SpeciesCat:     true,
	SpeciesRabbit:  true,
	SpeciesBird:    true,
	SpeciesReptile: true,
	SpeciesOther:   true,
}

func (s Species) IsValid() bool { return validSpecies[s] }

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale || s == SexUnknown
}

// Pet es el paciente dueño de la historia clínica.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species Species
	Breed   string // texto libre
	Sex     Sex

	BirthDate *time.Time
	Microchip string

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
