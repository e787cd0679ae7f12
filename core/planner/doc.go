// Package planner builds preparation production schedules. An initial greedy
// placement pass assigns every batch to the latest available weekday in its
// valid window, then two consolidation passes re-pack the schedule to reduce
// the number of distinct production days under per-day count and same-type
// volume limits.
package planner
