package fontdata

import (
	stdStrconv "strconv"
	"unicode/utf8"
)

var glyphList = map[string]rune{
	"space":  ' ',
	"zero":   '0',
	"one":    '1',
	"two":    '2',
	"three":  '3',
	"four":   '4',
	"five":   '5',
	"six":    '6',
	"seven":  '7',
	"eight":  '8',
	"nine":   '9',
	"hyphen": '-',
	"period": '.',
	"comma":  ',',
}

func init() {
	for r := 'A'; r <= 'Z'; r++ {
		glyphList[string(r)] = r
		glyphList[string(r+'a'-'A')] = r + 'a' - 'A'
	}

	// Cyrillic names from the Adobe Glyph List
	afii := func(id int, r rune) {
		glyphList["afii"+stdStrconv.Itoa(id)] = r
	}
	for i := 0; i < 6; i++ {
		afii(10017+i, 0x0410+rune(i)) // А-Е
		afii(10065+i, 0x0430+rune(i)) // а-е
	}
	afii(10023, 0x0401) // Ё
	afii(10071, 0x0451) // ё
	for i := 0; i < 26; i++ {
		afii(10024+i, 0x0416+rune(i)) // Ж-Я
		afii(10072+i, 0x0436+rune(i)) // ж-я
	}
	for i := 0; i < 11; i++ {
		afii(10051+i, 0x0402+rune(i)) // Ђ-Ќ
		afii(10099+i, 0x0452+rune(i)) // ђ-ќ
	}
	afii(10062, 0x040E) // Ў
	afii(10110, 0x045E) // ў
	afii(10145, 0x040F) // Џ
	afii(10193, 0x045F) // џ
	afii(10050, 0x0490) // Ґ
	afii(10098, 0x0491) // ґ
	for i, r := range []rune{0x0462, 0x0472, 0x0474} { // Ѣ Ѳ Ѵ
		afii(10146+i, r)
		afii(10194+i, r+1)
	}
}

// glyphRune returns the character of a glyph name. Besides the built-in glyph list it understands the uniXXXX and uXXXX[XX] naming conventions.
func glyphRune(name string) (rune, bool) {
	if r, ok := glyphList[name]; ok {
		return r, true
	}

	var hex string
	if len(name) == 7 && name[:3] == "uni" {
		hex = name[3:]
	} else if 5 <= len(name) && len(name) <= 7 && name[0] == 'u' {
		hex = name[1:]
	} else {
		return 0, false
	}
	v, err := stdStrconv.ParseUint(hex, 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return 0, false
	}
	return rune(v), true
}
