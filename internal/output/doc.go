// Package output provides styled terminal output for fastgen.
//
// It wraps charmbracelet/log for leveled logging and charmbracelet/lipgloss
// for styling. Commands should report through this package instead of
// printing with fmt directly, so that --json and NO_COLOR behave uniformly.
//
// Features:
//   - Leveled logging with status prefixes (Info, Warn, Error, Debug)
//   - JSON output mode for scripting (--json flag)
//   - NO_COLOR environment variable support
//   - Verbose mode via -v flag
package output
