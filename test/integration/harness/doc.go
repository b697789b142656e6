// Package harness provides utilities for integration testing the chime CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - CHIME_HOME: Isolated per test (temp directory)
//   - CHIME_DEBUG: Disabled to reduce noise
package harness
