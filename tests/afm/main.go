//go:build gofuzz
// +build gofuzz

package fuzz

import "github.com/tdewolff/fontdata"

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	afm, err := fontdata.ParseAFM(data)
	if err != nil {
		return 0
	}
	_, _ = afm.Table(nil)
	return 1
}
