// Package orchestration coordinates the concurrent execution of one or more
// transform backends on the same operands, collects timed results, and
// cross-checks the products for consistency. It owns no presentation logic;
// progress display and result formatting are injected through interfaces so
// the CLI and tests can supply their own.
package orchestration
