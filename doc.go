// Package skillgraph is a small Gaussian belief-propagation engine for
// TrueSkill-style rating models: skills, performances and team totals linked
// by prior, likelihood and weighted-sum factors.
//
// 🚀 What is skillgraph?
//
//	A library plus CLI that brings together:
//		• Gaussian arithmetic in precision space (multiply, divide, normalizers)
//		• Factor-graph runtime: variables, messages, step/sequence/loop schedules
//		• Factors: weighted sum V0 = Σ aᵢ·Vᵢ in every direction, prior, likelihood
//		• Model building from YAML, structured logs and Prometheus counters
//
// ✨ Why skillgraph?
//
//   - Exact in both directions - the weighted sum is solved once per variable
//   - Never NaN - uninformed inputs produce uniform messages, not garbage
//   - Observable - every schedule takes a zap logger and metrics
//
// Packages:
//
//	gaussian/    - Distribution value type and its arithmetic
//	factorgraph/ - Variable, Message, Base, Step, Sequence, Loop, List, Metrics
//	factors/     - WeightedSumFactor, PriorFactor, LikelihoodFactor, DerivePlans
//	model/       - builds and solves a graph from config.GraphConfig
//	config/      - YAML + .env + SKILLGRAPH_* configuration
//	logging/     - zap logger from config
//	cmd/skillgraph - `solve` and `plan` commands
//
// Quick ASCII example:
//
//	 alice   bob          skills        N(25, 8.3²)
//	   │      │           likelihood    perf ~ N(skill, β²)
//	 perfA  perfB
//	    \    /            weighted sum  team = 1·perfA + 1·perfB
//	     team  ← observed 60
//
//	go install github.com/katalvlaran/skillgraph/cmd/skillgraph@latest
package skillgraph
