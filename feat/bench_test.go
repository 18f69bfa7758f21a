package feat_test

import (
	"testing"

	"github.com/katalvlaran/molgraph/feat"
)

// benchMols spans the size range typical of regression benchmarks.
var benchMols = map[string]string{
	"propane":     "CCC",
	"aspirin":     "CC(=O)Oc1ccccc1C(=O)O",
	"caffeine":    "Cn1cnc2c1c(=O)n(C)c(=O)n2C",
	"cholesterol": "CC(C)CCCC(C)C1CCC2C1(CCC3C2CC=C4C3(CCC(C4)O)C)C",
}

func BenchmarkFeaturize(b *testing.B) {
	for name, s := range benchMols {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := feat.Featurize(s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFeaturizeBatch(b *testing.B) {
	batch := make([]string, 0, len(benchMols))
	for _, s := range benchMols {
		batch = append(batch, s)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := feat.FeaturizeBatch(batch); err != nil {
			b.Fatal(err)
		}
	}
}
