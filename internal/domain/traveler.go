package domain

import (
	"errors"
	"fmt"
	"time"
)

// TravelProfile representa el perfil de viaje de una persona.
// Es un registro inmutable: el núcleo de compatibilidad nunca lo modifica.
type TravelProfile struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"display_name,omitempty"`
	HomeLocation string    `json:"home_location,omitempty"`
	TravelStyle  string    `json:"travel_style"`
	Interests    []string  `json:"interests"`
	BudgetPerDay float64   `json:"budget_per_day"`
	TripStart    time.Time `json:"trip_start"`
	TripEnd      time.Time `json:"trip_end"`
	Destinations []string  `json:"destinations"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrEmptyProfileID   = errors.New("profile id is empty")
	ErrNegativeBudget   = errors.New("budget per day is negative")
	ErrInvalidDateRange = errors.New("trip start is after trip end")
)

// Validate verifica las precondiciones del perfil antes de evaluarlo.
// Un perfil malformado es una violación de contrato de la fuente de datos,
// así que se falla rápido con un error descriptivo.
func (p TravelProfile) Validate() error {
	if p.ID == "" {
		return ErrEmptyProfileID
	}
	if p.BudgetPerDay < 0 {
		return fmt.Errorf("profile %s: %w", p.ID, ErrNegativeBudget)
	}
	if p.TripStart.After(p.TripEnd) {
		return fmt.Errorf("profile %s: %w", p.ID, ErrInvalidDateRange)
	}
	return nil
}

// Dates devuelve el rango de fechas del viaje.
func (p TravelProfile) Dates() DateRange {
	return DateRange{Start: p.TripStart, End: p.TripEnd}
}

// DateRange es un par (inicio, fin) con inicio <= fin.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days devuelve la duración del rango en días fraccionales.
func (r DateRange) Days() float64 {
	return r.End.Sub(r.Start).Hours() / 24
}

// DestinationOverlap describe el solape de destinos entre dos perfiles.
// Common conserva el orden del perfil de referencia, duplicados incluidos;
// Ratio usa la unión deduplicada como denominador.
type DestinationOverlap struct {
	Count  int      `json:"count"`
	Ratio  float64  `json:"ratio"`
	Common []string `json:"common"`
}

// CompatibilityBreakdown expone los sub-puntajes que alimentan el agregado.
type CompatibilityBreakdown struct {
	DestinationRatio float64 `json:"destination_ratio"`
	DateOverlap      float64 `json:"date_overlap"`
	InterestJaccard  float64 `json:"interest_jaccard"`
	BudgetSimilarity float64 `json:"budget_similarity"`
	StyleMatch       float64 `json:"style_match"`
}

// CompatibilityResult es el resultado efímero de evaluar un par de perfiles.
// Se recalcula en cada petición y nunca se persiste.
type CompatibilityResult struct {
	Score              int                     `json:"score"`
	CommonDestinations []string                `json:"common_destinations"`
	Breakdown          *CompatibilityBreakdown `json:"breakdown,omitempty"`
}

// MatchResult empaqueta un candidato evaluado contra la referencia.
type MatchResult struct {
	Traveler      TravelProfile       `json:"traveler"`
	Compatibility CompatibilityResult `json:"compatibility"`
}
