package sequencer_test

import (
	"testing"

	"github.com/katalvlaran/keypads/sequencer"
)

// BenchmarkCost25 measures pricing the sample codes at depth 25 without
// the result cache.
func BenchmarkCost25(b *testing.B) {
	s, err := sequencer.New(25, sequencer.WithCacheSize(0))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, code := range sampleCodes {
			if _, err := s.Cost(code); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkMaterialize2 measures literal expansion at depth 2.
func BenchmarkMaterialize2(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := sequencer.Materialize("379A", 2); err != nil {
			b.Fatal(err)
		}
	}
}
