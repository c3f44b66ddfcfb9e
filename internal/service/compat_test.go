package service

import (
	"errors"
	"math"
	"testing"
	"time"

	"travelmatch/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, time.November, d, 0, 0, 0, 0, time.UTC)
}

func profileNina() domain.TravelProfile {
	return domain.TravelProfile{
		ID:           "nina",
		TravelStyle:  "Backpacker",
		Interests:    []string{"food", "photography", "markets", "hostels", "trains"},
		BudgetPerDay: 50,
		TripStart:    day(15),
		TripEnd:      day(25),
		Destinations: []string{"Jaipur", "Agra", "Udaipur"},
	}
}

func profileAarav() domain.TravelProfile {
	return domain.TravelProfile{
		ID:           "aarav",
		TravelStyle:  "Backpacker",
		Interests:    []string{"food", "history", "street-art", "hostels", "trains"},
		BudgetPerDay: 45,
		TripStart:    day(10),
		TripEnd:      day(24),
		Destinations: []string{"Jaipur", "Agra", "Varanasi", "Delhi"},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDateOverlapRatio(t *testing.T) {
	engine := DefaultCompatEngine

	t.Run("identical ranges score one", func(t *testing.T) {
		r := domain.DateRange{Start: day(1), End: day(8)}
		if got := engine.DateOverlapRatio(r, r); got != 1 {
			t.Fatalf("expected 1.0 for identical ranges, got %v", got)
		}
	})

	t.Run("disjoint ranges score zero", func(t *testing.T) {
		a := domain.DateRange{Start: day(1), End: day(5)}
		b := domain.DateRange{Start: day(10), End: day(20)}
		if got := engine.DateOverlapRatio(a, b); got != 0 {
			t.Fatalf("expected 0 for disjoint ranges, got %v", got)
		}
	})

	t.Run("short trip inside long trip scores one", func(t *testing.T) {
		short := domain.DateRange{Start: day(12), End: day(14)}
		long := domain.DateRange{Start: day(1), End: day(28)}
		if got := engine.DateOverlapRatio(short, long); got != 1 {
			t.Fatalf("expected 1.0 for contained short trip, got %v", got)
		}
	})

	t.Run("partial overlap uses shorter trip as denominator", func(t *testing.T) {
		a := domain.DateRange{Start: day(15), End: day(25)} // 10 days
		b := domain.DateRange{Start: day(10), End: day(24)} // 14 days
		if got := engine.DateOverlapRatio(a, b); !almostEqual(got, 0.9) {
			t.Fatalf("expected 0.9, got %v", got)
		}
	})

	t.Run("zero-length trip does not divide by zero", func(t *testing.T) {
		point := domain.DateRange{Start: day(3), End: day(3)}
		other := domain.DateRange{Start: day(1), End: day(10)}
		got := engine.DateOverlapRatio(point, other)
		if math.IsNaN(got) || got < 0 || got > 1 {
			t.Fatalf("expected ratio in [0,1], got %v", got)
		}
	})
}

func TestDestinationOverlap(t *testing.T) {
	engine := DefaultCompatEngine

	t.Run("scenario overlap", func(t *testing.T) {
		got := engine.DestinationOverlap(profileNina().Destinations, profileAarav().Destinations)
		if got.Count != 2 {
			t.Fatalf("expected count 2, got %d", got.Count)
		}
		if len(got.Common) != 2 || got.Common[0] != "Jaipur" || got.Common[1] != "Agra" {
			t.Fatalf("expected [Jaipur Agra] in reference order, got %v", got.Common)
		}
		if !almostEqual(got.Ratio, 0.4) {
			t.Fatalf("expected ratio 2/5, got %v", got.Ratio)
		}
	})

	t.Run("disjoint lists", func(t *testing.T) {
		got := engine.DestinationOverlap([]string{"Lima"}, []string{"Cusco"})
		if got.Count != 0 || got.Ratio != 0 || len(got.Common) != 0 {
			t.Fatalf("expected empty overlap, got %+v", got)
		}
	})

	t.Run("both lists empty", func(t *testing.T) {
		got := engine.DestinationOverlap(nil, nil)
		if got.Ratio != 0 || got.Count != 0 {
			t.Fatalf("expected zero overlap for empty lists, got %+v", got)
		}
	})

	t.Run("case sensitive match", func(t *testing.T) {
		got := engine.DestinationOverlap([]string{"jaipur"}, []string{"Jaipur"})
		if got.Count != 0 {
			t.Fatalf("expected no match across case, got %+v", got)
		}
	})

	// El numerador conserva duplicados de la referencia mientras que el
	// denominador deduplica la unión. Este test fija ese comportamiento.
	t.Run("duplicate asymmetry", func(t *testing.T) {
		got := engine.DestinationOverlap(
			[]string{"Agra", "Agra", "Jaipur"},
			[]string{"Agra", "Delhi"},
		)
		if got.Count != 2 {
			t.Fatalf("expected duplicated reference entries counted, got %d", got.Count)
		}
		if len(got.Common) != 2 || got.Common[0] != "Agra" || got.Common[1] != "Agra" {
			t.Fatalf("expected [Agra Agra], got %v", got.Common)
		}
		// Unión deduplicada: {Agra, Jaipur, Delhi} = 3.
		if !almostEqual(got.Ratio, 2.0/3.0) {
			t.Fatalf("expected ratio 2/3, got %v", got.Ratio)
		}
	})

	// Si todos los duplicados de la referencia coinciden, el cociente crudo
	// supera la unión; el ratio queda recortado a 1 y Common no se toca.
	t.Run("duplicates cannot push ratio past one", func(t *testing.T) {
		got := engine.DestinationOverlap(
			[]string{"Agra", "Agra"},
			[]string{"Agra"},
		)
		if got.Count != 2 {
			t.Fatalf("expected count 2, got %d", got.Count)
		}
		if len(got.Common) != 2 || got.Common[0] != "Agra" || got.Common[1] != "Agra" {
			t.Fatalf("expected [Agra Agra], got %v", got.Common)
		}
		if got.Ratio != 1 {
			t.Fatalf("expected ratio clamped to 1, got %v", got.Ratio)
		}
	})
}

func TestInterestJaccard(t *testing.T) {
	engine := DefaultCompatEngine
	a := profileNina().Interests
	b := profileAarav().Interests

	if got := engine.InterestJaccard(a, b); !almostEqual(got, 3.0/7.0) {
		t.Fatalf("expected 3/7, got %v", got)
	}
	if engine.InterestJaccard(a, b) != engine.InterestJaccard(b, a) {
		t.Fatalf("expected jaccard to be symmetric")
	}
	if got := engine.InterestJaccard(a, a); got != 1 {
		t.Fatalf("expected self similarity 1, got %v", got)
	}
	if got := engine.InterestJaccard(nil, nil); got != 0 {
		t.Fatalf("expected 0 for two empty sets, got %v", got)
	}
	if got := engine.InterestJaccard([]string{"food", "food"}, []string{"food"}); got != 1 {
		t.Fatalf("expected duplicates to collapse, got %v", got)
	}
}

func TestBudgetSimilarity(t *testing.T) {
	engine := DefaultCompatEngine

	if got := engine.BudgetSimilarity(40, 40); got != 1 {
		t.Fatalf("expected identical budgets to score 1, got %v", got)
	}
	if got := engine.BudgetSimilarity(40, 100); got != 0 {
		t.Fatalf("expected sensitivity-wide gap to score 0, got %v", got)
	}
	if got := engine.BudgetSimilarity(0, 500); got != 0 {
		t.Fatalf("expected huge gap to clamp at 0, got %v", got)
	}
	if engine.BudgetSimilarity(30, 75) != engine.BudgetSimilarity(75, 30) {
		t.Fatalf("expected budget similarity to be symmetric")
	}
	if got := engine.BudgetSimilarity(50, 45); !almostEqual(got, 1-5.0/60.0) {
		t.Fatalf("expected linear decay 1-5/60, got %v", got)
	}

	custom := NewCompatEngine(DefaultWeights(), 10)
	if got := custom.BudgetSimilarity(40, 50); got != 0 {
		t.Fatalf("expected custom sensitivity to zero out at 10 units, got %v", got)
	}
}

func TestStyleMatch(t *testing.T) {
	engine := DefaultCompatEngine
	if engine.StyleMatch("Backpacker", "Backpacker") != 1 {
		t.Fatalf("expected identical styles to match")
	}
	if engine.StyleMatch("Backpacker", "Budget") != 0 {
		t.Fatalf("expected unrelated styles to score 0")
	}
	if engine.StyleMatch("Backpacker", "backpacker") != 0 {
		t.Fatalf("expected case-sensitive comparison")
	}
}

func TestCompute_Scenario(t *testing.T) {
	got, err := DefaultCompatEngine.Compute(profileNina(), profileAarav())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.CommonDestinations) != 2 || got.CommonDestinations[0] != "Jaipur" || got.CommonDestinations[1] != "Agra" {
		t.Fatalf("expected common destinations [Jaipur Agra], got %v", got.CommonDestinations)
	}
	if got.Breakdown == nil {
		t.Fatalf("expected breakdown")
	}
	if !almostEqual(got.Breakdown.DestinationRatio, 0.4) {
		t.Fatalf("expected destination ratio 0.4, got %v", got.Breakdown.DestinationRatio)
	}
	if !almostEqual(got.Breakdown.DateOverlap, 0.9) {
		t.Fatalf("expected date overlap 0.9, got %v", got.Breakdown.DateOverlap)
	}
	if !almostEqual(got.Breakdown.InterestJaccard, 3.0/7.0) {
		t.Fatalf("expected jaccard 3/7, got %v", got.Breakdown.InterestJaccard)
	}
	if !almostEqual(got.Breakdown.BudgetSimilarity, 1-5.0/60.0) {
		t.Fatalf("expected budget similarity 55/60, got %v", got.Breakdown.BudgetSimilarity)
	}
	if got.Breakdown.StyleMatch != 1 {
		t.Fatalf("expected style match 1, got %v", got.Breakdown.StyleMatch)
	}
	// 0.30 + 0.20*0.4 + 0.20*0.9 + 0.15*(3/7) + 0.10*(55/60) + 0.05 = 0.76595...
	if got.Score != 77 {
		t.Fatalf("expected score 77, got %d", got.Score)
	}
}

func TestCompute_NoSharedDestinationsOrInterests(t *testing.T) {
	ref := domain.TravelProfile{
		ID:           "a",
		TravelStyle:  "Comfort",
		Interests:    []string{"museums"},
		BudgetPerDay: 80,
		TripStart:    day(1),
		TripEnd:      day(10),
		Destinations: []string{"Lima"},
	}
	cand := ref
	cand.ID = "b"
	cand.Interests = []string{"surf"}
	cand.Destinations = []string{"Cusco"}

	got, err := DefaultCompatEngine.Compute(ref, cand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.CommonDestinations) != 0 {
		t.Fatalf("expected no common destinations, got %v", got.CommonDestinations)
	}
	// Solo aportan fechas idénticas, presupuesto idéntico y estilo idéntico:
	// 0.20 + 0.10 + 0.05 = 0.35.
	if got.Score != 35 {
		t.Fatalf("expected score 35, got %d", got.Score)
	}
}

func TestCompute_ScoreBounds(t *testing.T) {
	ref := profileNina()
	self := ref
	self.ID = "nina-clone"
	got, err := DefaultCompatEngine.Compute(ref, self)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 100 {
		t.Fatalf("expected identical profiles to score 100, got %d", got.Score)
	}

	worst := domain.TravelProfile{
		ID:           "worst",
		TravelStyle:  "Luxury",
		Interests:    []string{"golf"},
		BudgetPerDay: 900,
		TripStart:    day(26),
		TripEnd:      day(28),
		Destinations: []string{"Monaco"},
	}
	got, err = DefaultCompatEngine.Compute(ref, worst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 0 {
		t.Fatalf("expected fully disjoint profiles to score 0, got %d", got.Score)
	}

	// Destinos duplicados en la referencia no pueden empujar el puntaje por
	// encima de 100.
	duped := ref
	duped.Destinations = []string{"Agra", "Agra"}
	twin := ref
	twin.ID = "twin"
	twin.Destinations = []string{"Agra"}
	got, err = DefaultCompatEngine.Compute(duped, twin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 100 {
		t.Fatalf("expected clamped score 100, got %d", got.Score)
	}
	if len(got.CommonDestinations) != 2 {
		t.Fatalf("expected duplicate common destinations preserved, got %v", got.CommonDestinations)
	}
}

func TestCompute_FailsFastOnMalformedProfiles(t *testing.T) {
	valid := profileNina()

	backwards := profileAarav()
	backwards.TripStart = day(24)
	backwards.TripEnd = day(10)
	if _, err := DefaultCompatEngine.Compute(valid, backwards); !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected invalid date range error, got %v", err)
	}

	broke := profileAarav()
	broke.BudgetPerDay = -1
	if _, err := DefaultCompatEngine.Compute(valid, broke); !errors.Is(err, domain.ErrNegativeBudget) {
		t.Fatalf("expected negative budget error, got %v", err)
	}

	anonymous := profileAarav()
	anonymous.ID = ""
	if _, err := DefaultCompatEngine.Compute(anonymous, valid); !errors.Is(err, domain.ErrEmptyProfileID) {
		t.Fatalf("expected empty id error, got %v", err)
	}
}
