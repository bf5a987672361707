package taxonomy

import "testing"

func TestSnakeDefaults(t *testing.T) {
	s := NewSnake()
	if got := s.Legs(); got != 0 {
		t.Fatalf("default legs: want 0, got %d", got)
	}
	if got := s.TailDescription(); got != "is mostly" {
		t.Fatalf("default tail description: want %q, got %q", "is mostly", got)
	}
	if got := s.VenomDescription(); got != "is not" {
		t.Fatalf("default venom description: want %q, got %q", "is not", got)
	}
	if got := s.ScaleDescription(); got != "has" {
		t.Fatalf("default scale description: want %q, got %q", "has", got)
	}
	if !s.Multicellular() {
		t.Fatal("snake must report multicellular")
	}
}

func TestSnakeVenomDescription(t *testing.T) {
	s := NewSnake()
	s.SetVenom(true)
	if got := s.VenomDescription(); got != "is" {
		t.Fatalf("venom description after SetVenom(true): want %q, got %q", "is", got)
	}
	s.SetVenom(false)
	if got := s.VenomDescription(); got != "is not" {
		t.Fatalf("venom description after SetVenom(false): want %q, got %q", "is not", got)
	}
}

// Documented quirk: the snake keeps its own tail flag alongside the
// organism-level one, and construction forces the organism-level flag to true
// no matter what the caller asked for. The two views diverge once the snake's
// own flag changes.
func TestSnakeTailShadowing(t *testing.T) {
	t.Run("default construction", func(t *testing.T) {
		s := NewSnake()
		if got := s.TailDescription(); got != "is mostly" {
			t.Fatalf("override view: want %q, got %q", "is mostly", got)
		}
		if got := s.ParentTailDescription(); got != "has" {
			t.Fatalf("parent view: want %q, got %q", "has", got)
		}
	})

	t.Run("WithTail(false) is ignored at construction", func(t *testing.T) {
		s := NewSnake(WithTail(false))
		if got := s.TailDescription(); got != "is mostly" {
			t.Fatalf("override view: want %q, got %q", "is mostly", got)
		}
		if got := s.ParentTailDescription(); got != "has" {
			t.Fatalf("parent view: want %q, got %q", "has", got)
		}
	})

	t.Run("SetTail(false) moves only the snake's own flag", func(t *testing.T) {
		s := NewSnake()
		s.SetTail(false)
		if got := s.TailDescription(); got != "must be dead" {
			t.Fatalf("override view: want %q, got %q", "must be dead", got)
		}
		if got := s.ParentTailDescription(); got != "has" {
			t.Fatalf("parent view must stay %q, got %q", "has", got)
		}
	})
}

func TestSnakeLegOverride(t *testing.T) {
	s := NewSnake(WithLegs(2))
	if got := s.Legs(); got != 2 {
		t.Fatalf("legs: want 2, got %d", got)
	}
}

func TestSnakeEatsInheritedSentinel(t *testing.T) {
	s := NewSnake()
	if s.Eats != nil {
		t.Fatalf("fresh snake must have nil Eats, got %v", *s.Eats)
	}
	s.Eats = boolPtr(true)
	if s.Eats == nil || !*s.Eats {
		t.Fatalf("Eats after assignment: want true, got %v", s.Eats)
	}
}
