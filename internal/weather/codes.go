package weather

import "strings"

// UnknownCondition is the label for codes outside the table.
const UnknownCondition = "Unknown"

var conditionLabels = map[string]map[int]string{
	"en": {
		0:  "Clear sky",
		1:  "Mainly clear",
		2:  "Partly cloudy",
		3:  "Overcast",
		45: "Fog",
		48: "Dense fog",
		51: "Light drizzle",
		53: "Moderate drizzle",
		55: "Dense drizzle",
		61: "Light rain",
		63: "Moderate rain",
		65: "Heavy rain",
		71: "Light snowfall",
		73: "Moderate snowfall",
		75: "Heavy snowfall",
		95: "Thunderstorm",
	},
	"de": {
		0:  "Klar",
		1:  "Überwiegend klar",
		2:  "Teilweise bewölkt",
		3:  "Bedeckt",
		45: "Neblig",
		48: "Dichter Nebel",
		51: "Leichter Nieselregen",
		53: "Mäßiger Nieselregen",
		55: "Starker Nieselregen",
		61: "Leichter Regen",
		63: "Mäßiger Regen",
		65: "Starker Regen",
		71: "Leichter Schneefall",
		73: "Mäßiger Schneefall",
		75: "Starker Schneefall",
		95: "Gewitter",
	},
}

var unknownLabels = map[string]string{
	"en": UnknownCondition,
	"de": "Unbekannt",
}

// Describe maps a WMO weather code to its English label.
func Describe(code int) string {
	return DescribeIn("en", code)
}

// DescribeIn maps a WMO weather code to a label in the given language.
// Unsupported languages fall back to English.
func DescribeIn(lang string, code int) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	labels, ok := conditionLabels[lang]
	if !ok {
		lang = "en"
		labels = conditionLabels[lang]
	}
	if label, ok := labels[code]; ok {
		return label
	}
	return unknownLabels[lang]
}

// SupportedLanguage reports whether a label table exists for lang.
func SupportedLanguage(lang string) bool {
	_, ok := conditionLabels[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}
