// Package cli holds the process-level plumbing shared by the searchctl and
// searchd executables: exit codes, logger construction, map loading and
// report rendering.
package cli
