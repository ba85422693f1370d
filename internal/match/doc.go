// Package match finds the closest known name to a misspelled one.
package match
