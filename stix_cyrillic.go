package fontdata

// STIXGeneralCyrillic holds the Cyrillic glyph metrics of STIXGeneral Regular.
// Only U+0430 and U+0491 are confirmed against the upstream data; the other entries are provisional
// until regenerated from the font with "fontdata extract -r Cyrillic STIXGeneral.otf".
var STIXGeneralCyrillic = Resource{
	Path:     STIXFontDir + "/General/Regular/Cyrillic.js",
	Format:   FormatHTMLCSS,
	Family:   FamilySTIXGeneral,
	Category: "Cyrillic",
	Table:    mustTable(stixGeneralCyrillic),
}

var stixGeneralCyrillic = map[rune]Metrics{
	0x401: {872, 0, 611, 12, 597},    // CYRILLIC CAPITAL LETTER IO
	0x402: {662, 189, 789, 17, 703},  // CYRILLIC CAPITAL LETTER DJE
	0x403: {928, 0, 590, 11, 559},    // CYRILLIC CAPITAL LETTER GJE
	0x404: {676, 14, 639, 28, 602},   // CYRILLIC CAPITAL LETTER UKRAINIAN IE
	0x405: {676, 14, 556, 42, 491},   // CYRILLIC CAPITAL LETTER DZE
	0x406: {662, 0, 333, 18, 315},    // CYRILLIC CAPITAL LETTER BYELORUSSIAN-UKRAINIAN I
	0x407: {872, 0, 333, 6, 326},     // CYRILLIC CAPITAL LETTER YI
	0x408: {662, 14, 373, -6, 354},   // CYRILLIC CAPITAL LETTER JE
	0x409: {662, 14, 1039, 11, 1001}, // CYRILLIC CAPITAL LETTER LJE
	0x40A: {662, 0, 1023, 19, 985},   // CYRILLIC CAPITAL LETTER NJE
	0x40B: {662, 0, 811, 17, 789},    // CYRILLIC CAPITAL LETTER TSHE
	0x40C: {928, 0, 700, 19, 693},    // CYRILLIC CAPITAL LETTER KJE
	0x40E: {915, 15, 722, 14, 706},   // CYRILLIC CAPITAL LETTER SHORT U
	0x40F: {662, 153, 722, 19, 703},  // CYRILLIC CAPITAL LETTER DZHE
	0x410: {674, 0, 722, 15, 707},    // CYRILLIC CAPITAL LETTER A
	0x411: {662, 0, 614, 19, 567},    // CYRILLIC CAPITAL LETTER BE
	0x412: {662, 0, 667, 17, 593},    // CYRILLIC CAPITAL LETTER VE
	0x413: {662, 0, 590, 11, 559},    // CYRILLIC CAPITAL LETTER GHE
	0x414: {662, 153, 721, 13, 701},  // CYRILLIC CAPITAL LETTER DE
	0x415: {662, 0, 611, 12, 597},    // CYRILLIC CAPITAL LETTER IE
	0x416: {676, 0, 1037, 12, 1025},  // CYRILLIC CAPITAL LETTER ZHE
	0x417: {676, 14, 589, 38, 557},   // CYRILLIC CAPITAL LETTER ZE
	0x418: {662, 0, 722, 19, 703},    // CYRILLIC CAPITAL LETTER I
	0x419: {915, 0, 722, 19, 703},    // CYRILLIC CAPITAL LETTER SHORT I
	0x41A: {676, 0, 700, 19, 693},    // CYRILLIC CAPITAL LETTER KA
	0x41B: {662, 14, 705, 11, 686},   // CYRILLIC CAPITAL LETTER EL
	0x41C: {662, 0, 889, 12, 863},    // CYRILLIC CAPITAL LETTER EM
	0x41D: {662, 0, 722, 18, 703},    // CYRILLIC CAPITAL LETTER EN
	0x41E: {676, 14, 722, 34, 688},   // CYRILLIC CAPITAL LETTER O
	0x41F: {662, 0, 722, 19, 703},    // CYRILLIC CAPITAL LETTER PE
	0x420: {662, 0, 557, 16, 542},    // CYRILLIC CAPITAL LETTER ER
	0x421: {676, 14, 667, 28, 633},   // CYRILLIC CAPITAL LETTER ES
	0x422: {662, 0, 611, 17, 593},    // CYRILLIC CAPITAL LETTER TE
	0x423: {662, 15, 722, 14, 706},   // CYRILLIC CAPITAL LETTER U
	0x424: {662, 0, 782, 34, 748},    // CYRILLIC CAPITAL LETTER EF
	0x425: {662, 0, 722, 10, 704},    // CYRILLIC CAPITAL LETTER HA
	0x426: {662, 153, 722, 19, 703},  // CYRILLIC CAPITAL LETTER TSE
	0x427: {662, 0, 664, 9, 645},     // CYRILLIC CAPITAL LETTER CHE
	0x428: {662, 0, 1015, 19, 996},   // CYRILLIC CAPITAL LETTER SHA
	0x429: {662, 153, 1015, 19, 996}, // CYRILLIC CAPITAL LETTER SHCHA
	0x42A: {662, 0, 723, 10, 692},    // CYRILLIC CAPITAL LETTER HARD SIGN
	0x42B: {662, 0, 877, 19, 858},    // CYRILLIC CAPITAL LETTER YERU
	0x42C: {662, 0, 581, 19, 550},    // CYRILLIC CAPITAL LETTER SOFT SIGN
	0x42D: {676, 14, 639, 37, 611},   // CYRILLIC CAPITAL LETTER E
	0x42E: {676, 14, 1044, 19, 1010}, // CYRILLIC CAPITAL LETTER YU
	0x42F: {662, 0, 667, 8, 648},     // CYRILLIC CAPITAL LETTER YA
	0x430: {460, 10, 450, 37, 446},   // CYRILLIC SMALL LETTER A
	0x431: {685, 10, 500, 29, 470},   // CYRILLIC SMALL LETTER BE
	0x432: {450, 0, 474, 14, 443},    // CYRILLIC SMALL LETTER VE
	0x433: {450, 0, 413, 14, 394},    // CYRILLIC SMALL LETTER GHE
	0x434: {450, 138, 504, 13, 490},  // CYRILLIC SMALL LETTER DE
	0x435: {460, 10, 444, 25, 424},   // CYRILLIC SMALL LETTER IE
	0x436: {456, 0, 729, 10, 719},    // CYRILLIC SMALL LETTER ZHE
	0x437: {460, 10, 415, 29, 385},   // CYRILLIC SMALL LETTER ZE
	0x438: {450, 0, 532, 14, 518},    // CYRILLIC SMALL LETTER I
	0x439: {682, 0, 532, 14, 518},    // CYRILLIC SMALL LETTER SHORT I
	0x43A: {456, 0, 505, 14, 492},    // CYRILLIC SMALL LETTER KA
	0x43B: {450, 10, 505, 4, 491},    // CYRILLIC SMALL LETTER EL
	0x43C: {450, 0, 612, 14, 598},    // CYRILLIC SMALL LETTER EM
	0x43D: {450, 0, 532, 14, 518},    // CYRILLIC SMALL LETTER EN
	0x43E: {460, 10, 500, 29, 470},   // CYRILLIC SMALL LETTER O
	0x43F: {450, 0, 532, 14, 518},    // CYRILLIC SMALL LETTER PE
	0x440: {460, 217, 500, 5, 470},   // CYRILLIC SMALL LETTER ER
	0x441: {460, 10, 444, 25, 412},   // CYRILLIC SMALL LETTER ES
	0x442: {450, 0, 444, 7, 437},     // CYRILLIC SMALL LETTER TE
	0x443: {450, 218, 500, 14, 475},  // CYRILLIC SMALL LETTER U
	0x444: {683, 217, 648, 29, 619},  // CYRILLIC SMALL LETTER EF
	0x445: {450, 0, 500, 17, 479},    // CYRILLIC SMALL LETTER HA
	0x446: {450, 138, 532, 14, 518},  // CYRILLIC SMALL LETTER TSE
	0x447: {450, 0, 500, 5, 486},     // CYRILLIC SMALL LETTER CHE
	0x448: {450, 0, 789, 14, 775},    // CYRILLIC SMALL LETTER SHA
	0x449: {450, 138, 789, 14, 775},  // CYRILLIC SMALL LETTER SHCHA
	0x44A: {450, 0, 528, 7, 497},     // CYRILLIC SMALL LETTER HARD SIGN
	0x44B: {450, 0, 712, 14, 698},    // CYRILLIC SMALL LETTER YERU
	0x44C: {450, 0, 450, 14, 419},    // CYRILLIC SMALL LETTER SOFT SIGN
	0x44D: {460, 10, 437, 25, 412},   // CYRILLIC SMALL LETTER E
	0x44E: {460, 10, 746, 14, 716},   // CYRILLIC SMALL LETTER YU
	0x44F: {450, 0, 499, 12, 485},    // CYRILLIC SMALL LETTER YA
	0x451: {678, 10, 444, 25, 424},   // CYRILLIC SMALL LETTER IO
	0x452: {683, 218, 487, 7, 440},   // CYRILLIC SMALL LETTER DJE
	0x453: {679, 0, 413, 14, 394},    // CYRILLIC SMALL LETTER GJE
	0x454: {460, 10, 437, 25, 412},   // CYRILLIC SMALL LETTER UKRAINIAN IE
	0x455: {459, 10, 389, 51, 348},   // CYRILLIC SMALL LETTER DZE
	0x456: {683, 0, 278, 16, 253},    // CYRILLIC SMALL LETTER BYELORUSSIAN-UKRAINIAN I
	0x457: {678, 0, 278, -14, 284},   // CYRILLIC SMALL LETTER YI
	0x458: {683, 218, 278, -70, 194}, // CYRILLIC SMALL LETTER JE
	0x459: {450, 10, 751, 4, 720},    // CYRILLIC SMALL LETTER LJE
	0x45A: {450, 0, 771, 14, 740},    // CYRILLIC SMALL LETTER NJE
	0x45B: {683, 0, 500, 7, 487},     // CYRILLIC SMALL LETTER TSHE
	0x45C: {679, 0, 505, 14, 492},    // CYRILLIC SMALL LETTER KJE
	0x45E: {682, 218, 500, 14, 475},  // CYRILLIC SMALL LETTER SHORT U
	0x45F: {450, 138, 532, 14, 518},  // CYRILLIC SMALL LETTER DZHE
	0x462: {662, 0, 721, 10, 690},    // CYRILLIC CAPITAL LETTER YAT
	0x463: {683, 0, 548, 7, 517},     // CYRILLIC SMALL LETTER YAT
	0x46A: {662, 0, 1017, 12, 1005},  // CYRILLIC CAPITAL LETTER BIG YUS
	0x46B: {450, 0, 683, 10, 673},    // CYRILLIC SMALL LETTER BIG YUS
	0x472: {676, 14, 729, 36, 690},   // CYRILLIC CAPITAL LETTER FITA
	0x473: {460, 10, 507, 29, 478},   // CYRILLIC SMALL LETTER FITA
	0x474: {676, 11, 766, 16, 760},   // CYRILLIC CAPITAL LETTER IZHITSA
	0x475: {456, 14, 539, 19, 539},   // CYRILLIC SMALL LETTER IZHITSA
	0x490: {803, 0, 590, 11, 559},    // CYRILLIC CAPITAL LETTER GHE WITH UPTURN
	0x491: {558, 0, 394, 17, 387},    // CYRILLIC SMALL LETTER GHE WITH UPTURN
}
