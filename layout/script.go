package layout

// Direction is the inline progression of a text run.
type Direction int

const (
	// LeftToRight is the direction of Latin, Cyrillic, CJK and most
	// other scripts.
	LeftToRight Direction = iota
	// RightToLeft is the direction of Arabic, Hebrew and a number of
	// historic scripts.
	RightToLeft
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LTR"
	case RightToLeft:
		return "RTL"
	default:
		return "Unknown"
	}
}

// rtlScripts is the set of OpenType script tags written right to left.
// Derived from the script tags registered in the OpenType specification
// plus the Unicode 7.0 additions.
var rtlScripts = map[Tag]bool{
	ParseTag("arab"): true, // Arabic
	ParseTag("hebr"): true, // Hebrew
	ParseTag("syrc"): true, // Syriac
	ParseTag("thaa"): true, // Thaana
	ParseTag("cprt"): true, // Cypriot Syllabary
	ParseTag("khar"): true, // Kharosthi
	ParseTag("phnx"): true, // Phoenician
	ParseTag("nko "): true, // N'Ko
	ParseTag("lydi"): true, // Lydian
	ParseTag("avst"): true, // Avestan
	ParseTag("armi"): true, // Imperial Aramaic
	ParseTag("phli"): true, // Inscriptional Pahlavi
	ParseTag("prti"): true, // Inscriptional Parthian
	ParseTag("sarb"): true, // Old South Arabian
	ParseTag("orkh"): true, // Old Turkic, Orkhon Runic
	ParseTag("samr"): true, // Samaritan
	ParseTag("mand"): true, // Mandaic, Mandaean
	ParseTag("merc"): true, // Meroitic Cursive
	ParseTag("mero"): true, // Meroitic Hieroglyphs
	ParseTag("mani"): true, // Manichaean
	ParseTag("mend"): true, // Mende Kikakui
	ParseTag("nbat"): true, // Nabataean
	ParseTag("narb"): true, // Old North Arabian
	ParseTag("palm"): true, // Palmyrene
	ParseTag("phlp"): true, // Psalter Pahlavi
}

// ScriptDirection maps an OpenType script tag to its text direction.
// Unknown tags map to LeftToRight.
func ScriptDirection(script Tag) Direction {
	if rtlScripts[script] {
		return RightToLeft
	}
	return LeftToRight
}
