// Package errors provides structured error types for the module rewriter.
//
// Errors carry a Phase (where in processing they occurred) and a Kind (what
// went wrong). Sentinel instances such as ErrUnsupportedImportLayout match
// with errors.Is regardless of detail text, so callers can branch on failure
// class without string inspection:
//
//	if errors.Is(err, wasierrors.ErrUnsupportedImportLayout) {
//	    // skip this module, continue the batch
//	}
package errors
