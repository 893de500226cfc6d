package details

import (
	"slices"
	"time"
)

// Helpers del evaluador de correcciones. Cada variante decide qué campos
// participan; acá solo vive la igualdad por tipo de campo.

func sameDay(a, b time.Time) bool { return day(a).Equal(day(b)) }

func sameOptDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameDay(*a, *b)
}

// sameStrings trata nil y vacío como equivalentes.
func sameStrings(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return slices.Equal(a, b)
}

// differs devuelve true si alguno de los campos comparados cambió.
func differs(equal ...bool) bool {
	for _, eq := range equal {
		if !eq {
			return true
		}
	}
	return false
}
