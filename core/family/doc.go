// Package family fans in the per-child weekly schedules and computes
// cross-child optimizations: shared activities, carpool candidates,
// protected family time, age-matched parallel activities and ranked
// recommendations.
package family
