package fontdata

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	stdStrconv "strconv"
	"unicode"

	"github.com/tdewolff/parse/v2/strconv"
)

// AFMCharMetrics are the metrics of one character in an Adobe Font Metrics file.
type AFMCharMetrics struct {
	CharacterCode int
	Width         int16
	BBox          [4]int16 // llx, lly, urx, ury
	Name          string
}

// AFM is a parsed Adobe Font Metrics file.
type AFM struct {
	FontName   string
	FullName   string
	FamilyName string
	Weight     string
	FontBBox   [4]int16

	CapHeight   int16
	XHeight     int16
	Ascender    int16
	Descender   int16
	ItalicAngle float64

	CharMetrics []AFMCharMetrics
	KernPairs   map[[2]uint16]int16

	names   map[string]uint16
	unicode map[rune]uint16
}

// NumGlyphs returns the number of glyphs the font contains.
func (afm *AFM) NumGlyphs() uint16 {
	return uint16(len(afm.CharMetrics))
}

// GlyphIndex returns the glyphID for a given rune and whether it exists.
func (afm *AFM) GlyphIndex(r rune) (uint16, bool) {
	glyphID, ok := afm.unicode[r]
	return glyphID, ok
}

// FindGlyphName returns the glyphID for a given glyph name and whether it exists.
func (afm *AFM) FindGlyphName(name string) (uint16, bool) {
	glyphID, ok := afm.names[name]
	return glyphID, ok
}

// Kerning returns the kerning between two glyphs, i.e. the advance correction for glyph pairs.
func (afm *AFM) Kerning(left, right uint16) int16 {
	return afm.KernPairs[[2]uint16{left, right}]
}

// Metrics returns the glyph metrics of the given glyph. The ink extent is taken from the character bounding box.
func (afm *AFM) Metrics(glyphID uint16) Metrics {
	if len(afm.CharMetrics) <= int(glyphID) {
		return Metrics{}
	}
	c := afm.CharMetrics[glyphID]
	return Metrics{
		Height: c.BBox[3],
		Depth:  -c.BBox[1],
		Width:  c.Width,
		Left:   c.BBox[0],
		Right:  c.BBox[2],
	}
}

// Table returns the metrics of all characters with a known Unicode mapping. When filter is not nil, only characters in the range table are included.
func (afm *AFM) Table(filter *unicode.RangeTable) (*Table, error) {
	metrics := map[rune]Metrics{}
	for r, glyphID := range afm.unicode {
		if filter == nil || unicode.Is(filter, r) {
			metrics[r] = afm.Metrics(glyphID)
		}
	}
	return NewTable(metrics)
}

func afmIsWhitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

func afmSkipWhitespace(b []byte, i int) int {
	for i < len(b) && afmIsWhitespace(b[i]) {
		i++
	}
	return i
}

func afmNextValue(b []byte, i int) ([]byte, int) {
	start := i
	for i < len(b) && !afmIsWhitespace(b[i]) {
		i++
	}
	return b[start:i], i
}

func afmParseString(b []byte, i int) (string, int) {
	i = afmSkipWhitespace(b, i)
	var v []byte
	v, i = afmNextValue(b, i)
	return string(v), i
}

func afmParseInteger(b []byte, i int) (int, int) {
	i = afmSkipWhitespace(b, i)
	v, n := strconv.ParseInt(b[i:])
	return int(v), i + n
}

func afmParseNumber(b []byte, i int) (float64, int) {
	i = afmSkipWhitespace(b, i)
	v, n := strconv.ParseDecimal(b[i:])
	return v, i + n
}

func afmRound(f float64) int16 {
	return int16(math.Round(f))
}

func (afm *AFM) parseCharMetrics(scanner *bufio.Scanner, j *int, n int) error {
	afm.CharMetrics = make([]AFMCharMetrics, n)
	afm.names = make(map[string]uint16, n)
	afm.unicode = make(map[rune]uint16, n)
	for i := 0; i < n; i++ {
		*j++
		if !scanner.Scan() {
			return fmt.Errorf("afm: invalid char metrics at line %v", *j)
		}
		line := scanner.Bytes()

		charMetrics := &afm.CharMetrics[i]
		val, pos := afmNextValue(line, 0)
		switch string(val) {
		case "C":
			charMetrics.CharacterCode, pos = afmParseInteger(line, pos)
		case "CH":
			pos = afmSkipWhitespace(line, pos)
			val, pos = afmNextValue(line, pos)
			if len(val) < 3 || val[0] != '<' || val[len(val)-1] != '>' {
				return fmt.Errorf("afm: invalid char metrics at line %v: expected <hex>", *j)
			} else if v, err := stdStrconv.ParseInt(string(val[1:len(val)-1]), 16, 0); err != nil {
				return fmt.Errorf("afm: invalid char metrics at line %v: %v", *j, err)
			} else {
				charMetrics.CharacterCode = int(v)
			}
		default:
			return fmt.Errorf("afm: invalid char metrics at line %v: unexpected %v", *j, string(val))
		}

		for pos < len(line) {
			pos = afmSkipWhitespace(line, pos)
			val, pos = afmNextValue(line, pos)
			pos = afmSkipWhitespace(line, pos)
			if pos == len(line) {
				continue
			} else if string(val) != ";" {
				return fmt.Errorf("afm: invalid char metrics at line %v: unexpected %v", *j, string(val))
			}

			var f float64
			val, pos = afmNextValue(line, pos)
			switch string(val) {
			case "WX", "W0X":
				f, pos = afmParseNumber(line, pos)
				charMetrics.Width = afmRound(f)
			case "N":
				charMetrics.Name, pos = afmParseString(line, pos)
			case "B":
				for k := 0; k < 4; k++ {
					f, pos = afmParseNumber(line, pos)
					charMetrics.BBox[k] = afmRound(f)
				}
			case "L":
				// ligatures do not contribute to glyph metrics
				_, pos = afmParseString(line, pos)
				_, pos = afmParseString(line, pos)
			default:
				return fmt.Errorf("afm: invalid char metrics at line %v: unexpected %v", *j, string(val))
			}
		}
		if charMetrics.Name == "" {
			return fmt.Errorf("afm: invalid char metrics at line %v: character name not specified", *j)
		}
		afm.names[charMetrics.Name] = uint16(i)
		if r, ok := glyphRune(charMetrics.Name); ok {
			afm.unicode[r] = uint16(i)
		}
	}
	*j++
	if !scanner.Scan() {
		return fmt.Errorf("afm: invalid char metrics at line %v", *j)
	} else if val, _ := afmNextValue(scanner.Bytes(), 0); string(val) != "EndCharMetrics" {
		return fmt.Errorf("afm: invalid char metrics at line %v: unexpected %v", *j, string(val))
	}
	return nil
}

func (afm *AFM) parseKernData(scanner *bufio.Scanner, j *int) error {
	for scanner.Scan() {
		*j++
		line := scanner.Bytes()
		key, pos := afmNextValue(line, 0)
		switch string(key) {
		case "StartTrackKern":
			n, _ := afmParseInteger(line, pos)
			if err := afmSkipSection(scanner, j, n, "EndTrackKern"); err != nil {
				return err
			}
		case "StartKernPairs", "StartKernPairs0":
			n, _ := afmParseInteger(line, pos)
			if err := afm.parseKernPairs(scanner, j, n); err != nil {
				return err
			}
		case "StartKernPairs1":
			// vertical writing direction
			n, _ := afmParseInteger(line, pos)
			if err := afmSkipSection(scanner, j, n, "EndKernPairs"); err != nil {
				return err
			}
		case "EndKernData":
			return nil
		}
	}
	return fmt.Errorf("afm: invalid kern data at line %v", *j)
}

func afmSkipSection(scanner *bufio.Scanner, j *int, n int, end string) error {
	for i := 0; i <= n; i++ {
		*j++
		if !scanner.Scan() {
			return fmt.Errorf("afm: invalid kern data at line %v", *j)
		}
	}
	if val, _ := afmNextValue(scanner.Bytes(), 0); string(val) != end {
		return fmt.Errorf("afm: invalid kern data at line %v: unexpected %v", *j, string(val))
	}
	return nil
}

func (afm *AFM) parseKernPairs(scanner *bufio.Scanner, j *int, n int) error {
	if afm.KernPairs == nil {
		afm.KernPairs = make(map[[2]uint16]int16, n)
	}
	for i := 0; i < n; i++ {
		*j++
		if !scanner.Scan() {
			return fmt.Errorf("afm: invalid kern data at line %v", *j)
		}
		line := scanner.Bytes()

		key, pos := afmNextValue(line, 0)
		if string(key) != "KPX" && string(key) != "KP" {
			continue
		}
		var left, right string
		var kern float64
		left, pos = afmParseString(line, pos)
		right, pos = afmParseString(line, pos)
		kern, _ = afmParseNumber(line, pos)
		if l, ok := afm.names[left]; !ok {
			return fmt.Errorf("afm: invalid kern data at line %v: unknown character name: %v", *j, left)
		} else if r, ok := afm.names[right]; !ok {
			return fmt.Errorf("afm: invalid kern data at line %v: unknown character name: %v", *j, right)
		} else {
			afm.KernPairs[[2]uint16{l, r}] = afmRound(kern)
		}
	}
	*j++
	if !scanner.Scan() {
		return fmt.Errorf("afm: invalid kern data at line %v", *j)
	} else if val, _ := afmNextValue(scanner.Bytes(), 0); string(val) != "EndKernPairs" {
		return fmt.Errorf("afm: invalid kern data at line %v: unexpected %v", *j, string(val))
	}
	return nil
}

// ParseAFM parses an Adobe Font Metrics file.
func ParseAFM(b []byte) (*AFM, error) {
	scanner := bufio.NewScanner(bytes.NewReader(b))
	if !scanner.Scan() {
		return nil, fmt.Errorf("invalid AFM file")
	} else if key, _ := afmNextValue(scanner.Bytes(), 0); string(key) != "StartFontMetrics" {
		return nil, fmt.Errorf("invalid AFM file")
	}

	j := 1 // line number
	afm := &AFM{}
Scanner:
	for scanner.Scan() {
		j++
		var f float64
		line := scanner.Bytes()
		key, pos := afmNextValue(line, 0)
		switch string(key) {
		case "FontName":
			afm.FontName, _ = afmParseString(line, pos)
		case "FullName":
			afm.FullName, _ = afmParseString(line, pos)
		case "FamilyName":
			afm.FamilyName, _ = afmParseString(line, pos)
		case "Weight":
			afm.Weight, _ = afmParseString(line, pos)
		case "FontBBox":
			for k := 0; k < 4; k++ {
				f, pos = afmParseNumber(line, pos)
				afm.FontBBox[k] = afmRound(f)
			}
		case "CapHeight":
			f, _ = afmParseNumber(line, pos)
			afm.CapHeight = afmRound(f)
		case "XHeight":
			f, _ = afmParseNumber(line, pos)
			afm.XHeight = afmRound(f)
		case "Ascender":
			f, _ = afmParseNumber(line, pos)
			afm.Ascender = afmRound(f)
		case "Descender":
			f, _ = afmParseNumber(line, pos)
			afm.Descender = afmRound(f)
		case "ItalicAngle":
			afm.ItalicAngle, _ = afmParseNumber(line, pos)
		case "StartCharMetrics":
			n, _ := afmParseInteger(line, pos)
			if err := afm.parseCharMetrics(scanner, &j, n); err != nil {
				return nil, err
			}
		case "StartKernData":
			if err := afm.parseKernData(scanner, &j); err != nil {
				return nil, err
			}
		case "EndFontMetrics":
			break Scanner
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	} else if afm.names == nil {
		return nil, fmt.Errorf("afm: no char metrics")
	}
	return afm, nil
}
