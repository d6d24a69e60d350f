// Package hardware drives the physical door-lock controller over a serial
// line.
//
// Each plan update is encoded as one text frame: a `DOOR <id> <STATE>`
// line per door id in sorted order, terminated by a single `END` line.
// Sorted order makes the frame deterministic for a fixed door map, so the
// firmware (and tests) can compare frames byte for byte.
//
// Delivery is latest-wins: if plan updates arrive faster than the line can
// drain them, intermediate frames are dropped and only the newest state is
// written. The controller degrades to a no-op when the port cannot be
// opened, and write failures are logged and absorbed; lock actuation is
// best-effort and never blocks planning.
package hardware
