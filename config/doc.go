// SPDX-License-Identifier: MIT

// Package config loads the skillgraph configuration: solver limits, logging
// and the factor graph to solve.
//
// Load builds the result in this order, each step overriding the previous:
//
//   - built-in defaults (Default);
//   - the YAML file passed to Load;
//   - SKILLGRAPH_* environment variables.
//
// Before that, the .env file named by SKILLGRAPH_ENV (default ".env") is
// loaded into the process environment if present, without replacing
// variables that are already set. Its SKILLGRAPH_* entries therefore apply at
// the environment step.
//
// Load validates the result and wraps ErrInvalidConfig on failure.
package config
