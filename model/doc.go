// SPDX-License-Identifier: MIT

// Package model turns a config.GraphConfig into a solvable factor graph.
//
// Build creates one variable per declared name, a prior factor for every
// variable with a prior and for every observation, a likelihood factor per
// skill/performance pair and a weighted-sum factor per sum. The schedule
// sends every prior once, then loops over
//
//	likelihoods skill→performance, every sum in every direction,
//	likelihoods performance→skill
//
// until the largest marginal change is at most the configured MaxDelta.
package model
