// Package utils provides common utility functions shared across the
// application. It includes helpers for rendering dataset cells in report
// output.
package utils
