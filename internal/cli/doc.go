// Package cli defines the larder command tree. The root command starts the
// terminal UI; the subcommands run one operation against the same saved state
// and print the result as a table or JSON.
package cli
