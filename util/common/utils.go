// Package common holds small formatting helpers shared by the CLI.
package common

import (
	"github.com/inhies/go-bytesize"
)

// GetSize formats a byte count for logs and tables, e.g. "1.50MB".
// Negative sizes mean unknown and render as "-".
func GetSize(sizeVal int64) string {
	if sizeVal < 0 {
		return "-"
	}
	return bytesize.New(float64(sizeVal)).String()
}
