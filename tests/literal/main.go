//go:build gofuzz
// +build gofuzz

package fuzz

import "github.com/tdewolff/fontdata"

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	_, _ = fontdata.ParseLiteral(data)
	return 1
}
