// Package fileutil walks a source tree and selects the files that signalscan classifies.
//
// The walker is the single place where traversal rules live:
//   - Entries whose basename starts with "." are skipped
//   - Entries named in WalkOptions.IgnoreDirs are skipped, subtree included
//   - Files must end in one of WalkOptions.Extensions
//   - Files ending in one of WalkOptions.ExcludeSuffixes are skipped even when the
//     extension matches (generated headers such as "foo.gen.h")
//
// Suffix matching is case-sensitive.
//
// # Usage
//
//	if err := fileutil.ValidateRoot(root, "icon.svg"); err != nil {
//	    return err
//	}
//	err := fileutil.WalkSources(root, fileutil.DefaultWalkOptions(), func(path string) error {
//	    return classify(path)
//	})
//
// # Ordering
//
// Entries are visited depth-first in directory-listing order. Callers that
// print results sort them first; nothing should depend on visit order.
//
// # Symlinks
//
// Links are followed: a linked source file is visited under the link's path and
// a linked directory is descended into. Directories are tracked by their
// resolved path, so a cyclic link stops instead of recursing forever and a
// directory reachable through several links is walked once. A dangling link
// named like a source file is an error; other dangling links are ignored.
package fileutil
