// Package display renders user-facing notices for the signalscan CLI.
//
// Warnings are written to stderr so they never mix with the report on stdout:
//
//	warning := display.Warning{
//	    Title:      "2 compat connection(s) were found but not cross-referenced",
//	    Suggestion: "Run with --include-compat to treat them as connections",
//	}
//	warning.Display(os.Stderr, logger.IsTerminal(os.Stderr))
//
// Color is applied only when the caller asks for it, so tests and redirected
// output receive plain text.
package display
