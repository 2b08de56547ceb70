// SPDX-License-Identifier: MIT

package factors_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/skillgraph/factorgraph"
	"github.com/katalvlaran/skillgraph/factors"
	"github.com/katalvlaran/skillgraph/gaussian"
)

// buildTeam returns a sum factor over n summands with informed marginals.
func buildTeam(b *testing.B, n int, seed int64) *factors.WeightedSumFactor {
	b.Helper()
	r := rand.New(rand.NewSource(seed))
	summands := make([]*factorgraph.Variable, n)
	weights := make([]float64, n)
	for i := range summands {
		summands[i] = factorgraph.NewVariable("p"+strconv.Itoa(i),
			gaussian.FromMeanAndVariance(r.Float64()*50, 1+r.Float64()*70))
		weights[i] = 0.5 + r.Float64()
	}
	sum := factorgraph.NewVariable("team", gaussian.FromMeanAndVariance(25*float64(n), 100))

	f, err := factors.NewWeightedSum(sum, summands, weights)
	if err != nil {
		b.Fatal(err)
	}

	return f
}

// BenchmarkWeightedSum_UpdateMessage measures one full sweep over all n+1
// messages for growing team sizes.
func BenchmarkWeightedSum_UpdateMessage(b *testing.B) {
	for _, n := range []int{2, 8, 32} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			f := buildTeam(b, n, 42)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for k := 0; k < f.NumberOfMessages(); k++ {
					if _, err := f.UpdateMessage(k); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

// BenchmarkDerivePlans measures plan construction, which is O(n²).
func BenchmarkDerivePlans(b *testing.B) {
	for _, n := range []int{2, 8, 32} {
		weights := make([]float64, n)
		for i := range weights {
			weights[i] = float64(i + 1)
		}
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := factors.DerivePlans(weights); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
