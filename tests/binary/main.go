//go:build gofuzz
// +build gofuzz

package fuzz

import "github.com/tdewolff/fontdata"

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	table := &fontdata.Table{}
	if err := table.UnmarshalBinary(data); err != nil {
		return 0
	}
	return 1
}
