// Package planner is the baseline agent's path-planning core: given a grid
// snapshot it locates the start and exit markers, finds a shortest route
// and returns the movement commands that walk it.
//
// The mission-control loop that owns the simulator connection supplies a
// grid (or a raw JSON observation) and issues the returned commands one by
// one; retries, timeouts and polling stay on that side.
//
// When the exit cannot be reached the error names the size of the region
// the start can reach, which separates a walled-in spawn from a cut corridor.
//
// Configuration comes from Config (DefaultConfig or LoadConfig for YAML).
// Diagnostic output goes through Logf, replaceable with SetLogger.
package planner
