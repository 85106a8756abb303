package llm

import (
	"math"
	"testing"
)

func TestLookupCost_KnownModel(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	if c == nil {
		t.Fatal("expected pricing for gemini-2.5-flash")
	}

	got := c.Cost(1_000_000, 1_000_000)
	want := c.InputPerMTok + c.OutputPerMTok
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("cost = %f, want %f", got, want)
	}
}

func TestLookupCost_UnknownModel(t *testing.T) {
	if c := LookupCost("some-future-model"); c != nil {
		t.Errorf("expected nil for unknown model, got %+v", c)
	}
}

func TestCost_Zero(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.30, OutputPerMTok: 2.50}
	if got := c.Cost(0, 0); got != 0 {
		t.Errorf("cost of zero tokens = %f", got)
	}
}
