package service

import (
	"math"

	"travelmatch/internal/domain"
)

// Pesos fijos del agregado; suman 1.0. El término bonus premia tener al menos
// un destino en común independientemente de cuántos sean.
const (
	weightDestinationBonus = 0.30
	weightDestinationRatio = 0.20
	weightDateOverlap      = 0.20
	weightInterests        = 0.15
	weightBudget           = 0.10
	weightStyle            = 0.05
)

// DefaultBudgetSensitivity es la diferencia de presupuesto diario (en unidades
// de moneda) a partir de la cual la similitud cae a cero. Parámetro de ajuste,
// no derivado de datos.
const DefaultBudgetSensitivity = 60.0

// Weights agrupa los pesos del agregado de compatibilidad.
type Weights struct {
	DestinationBonus float64
	DestinationRatio float64
	DateOverlap      float64
	Interests        float64
	Budget           float64
	Style            float64
}

// DefaultWeights devuelve los pesos de referencia del agregado.
func DefaultWeights() Weights {
	return Weights{
		DestinationBonus: weightDestinationBonus,
		DestinationRatio: weightDestinationRatio,
		DateOverlap:      weightDateOverlap,
		Interests:        weightInterests,
		Budget:           weightBudget,
		Style:            weightStyle,
	}
}

// CompatEngine calcula la compatibilidad de viaje entre dos perfiles.
// Es puro y sin estado compartido: seguro para uso concurrente.
type CompatEngine struct {
	weights           Weights
	budgetSensitivity float64
}

// NewCompatEngine crea un motor con los pesos dados y la sensibilidad de
// presupuesto indicada. Valores no positivos de sensibilidad caen al default.
func NewCompatEngine(weights Weights, budgetSensitivity float64) CompatEngine {
	if budgetSensitivity <= 0 {
		budgetSensitivity = DefaultBudgetSensitivity
	}
	return CompatEngine{weights: weights, budgetSensitivity: budgetSensitivity}
}

// DefaultCompatEngine permite uso directo sin instanciar.
var DefaultCompatEngine = NewCompatEngine(DefaultWeights(), DefaultBudgetSensitivity)

// DateOverlapRatio devuelve la fracción del viaje más corto que se solapa con
// el otro. Un viaje corto contenido por completo en uno largo puntúa 1.0: se
// favorece al viajero más restringido. Viajes de duración cero usan un
// denominador mínimo de un día.
func (e CompatEngine) DateOverlapRatio(a, b domain.DateRange) float64 {
	overlapStart := a.Start
	if b.Start.After(overlapStart) {
		overlapStart = b.Start
	}
	overlapEnd := a.End
	if b.End.Before(overlapEnd) {
		overlapEnd = b.End
	}

	overlapDays := overlapEnd.Sub(overlapStart).Hours() / 24
	if overlapDays < 0 {
		overlapDays = 0
	}

	shorter := math.Min(a.Days(), b.Days())
	if shorter < 1 {
		shorter = 1
	}
	return clamp01(overlapDays / shorter)
}

// DestinationOverlap calcula el solape de destinos. Common conserva el orden
// (y los duplicados) de la lista de referencia; el denominador del ratio es la
// unión deduplicada de ambas listas. Esa asimetría es intencional, pero el
// ratio se recorta a 1: con duplicados en la referencia el cociente crudo
// puede superar la unión.
func (e CompatEngine) DestinationOverlap(ref, cand []string) domain.DestinationOverlap {
	candSet := make(map[string]struct{}, len(cand))
	for _, d := range cand {
		candSet[d] = struct{}{}
	}

	common := make([]string, 0, len(ref))
	union := make(map[string]struct{}, len(ref)+len(cand))
	for _, d := range ref {
		union[d] = struct{}{}
		if _, ok := candSet[d]; ok {
			common = append(common, d)
		}
	}
	for _, d := range cand {
		union[d] = struct{}{}
	}

	unionSize := len(union)
	if unionSize == 0 {
		unionSize = 1
	}
	return domain.DestinationOverlap{
		Count:  len(common),
		Ratio:  clamp01(float64(len(common)) / float64(unionSize)),
		Common: common,
	}
}

// InterestJaccard es el índice de Jaccard sobre los conjuntos de intereses.
// Coincidencia exacta de etiquetas, sensible a mayúsculas; sin fuzzy matching.
func (e CompatEngine) InterestJaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, tag := range a {
		setA[tag] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, tag := range b {
		setB[tag] = struct{}{}
	}

	intersection := 0
	for tag := range setA {
		if _, ok := setB[tag]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		union = 1
	}
	return float64(intersection) / float64(union)
}

// BudgetSimilarity aplica decaimiento lineal sobre la diferencia absoluta de
// presupuesto diario. Una diferencia igual o mayor a la sensibilidad da cero.
func (e CompatEngine) BudgetSimilarity(a, b float64) float64 {
	return math.Max(0, 1-math.Abs(a-b)/e.budgetSensitivity)
}

// StyleMatch es binario: 1 si las etiquetas de estilo son idénticas, 0 si no.
// No hay crédito parcial entre estilos relacionados.
func (e CompatEngine) StyleMatch(a, b string) float64 {
	if a == b {
		return 1
	}
	return 0
}

// Compute evalúa la compatibilidad entre la referencia y el candidato.
// Valida ambos perfiles primero: entradas malformadas devuelven error en vez
// de un puntaje sin sentido.
func (e CompatEngine) Compute(ref, cand domain.TravelProfile) (domain.CompatibilityResult, error) {
	if err := ref.Validate(); err != nil {
		return domain.CompatibilityResult{}, err
	}
	if err := cand.Validate(); err != nil {
		return domain.CompatibilityResult{}, err
	}

	dest := e.DestinationOverlap(ref.Destinations, cand.Destinations)
	breakdown := &domain.CompatibilityBreakdown{
		DestinationRatio: dest.Ratio,
		DateOverlap:      e.DateOverlapRatio(ref.Dates(), cand.Dates()),
		InterestJaccard:  e.InterestJaccard(ref.Interests, cand.Interests),
		BudgetSimilarity: e.BudgetSimilarity(ref.BudgetPerDay, cand.BudgetPerDay),
		StyleMatch:       e.StyleMatch(ref.TravelStyle, cand.TravelStyle),
	}

	bonus := 0.0
	if dest.Ratio > 0 {
		bonus = 1
	}
	raw := e.weights.DestinationBonus*bonus +
		e.weights.DestinationRatio*dest.Ratio +
		e.weights.DateOverlap*breakdown.DateOverlap +
		e.weights.Interests*breakdown.InterestJaccard +
		e.weights.Budget*breakdown.BudgetSimilarity +
		e.weights.Style*breakdown.StyleMatch

	return domain.CompatibilityResult{
		Score:              int(math.Round(clamp01(raw) * 100)),
		CommonDestinations: dest.Common,
		Breakdown:          breakdown,
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
