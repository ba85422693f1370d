// Package diagnostic collects the notices emitted while writing a package
// to disk: existing package directories, output locations and skipped files.
package diagnostic
