package dictionary

// Reason is one deinflection step code, e.g. "past" or "te".
type Reason string

// Display labels for the known reason codes. The codes follow the
// deinflection tables of the surrounding card-template ecosystem; keeping
// the labels here means unknown codes still render as themselves instead
// of breaking the conjugation marker.
var reasonLabels = map[Reason]string{
	"adv":        "adv",
	"ba":         "-ba",
	"chau":       "-chau",
	"causative":  "causative",
	"continuous": "continuous",
	"ge":         "-ge",
	"imperative": "imperative",
	"ki":         "-ki",
	"masu-stem":  "masu stem",
	"nai":        "-nai",
	"negative":   "negative",
	"noun":       "noun",
	"passive":    "passive",
	"past":       "past",
	"polite":     "polite",
	"potential":  "potential",
	"sou":        "-sou",
	"sugiru":     "-sugiru",
	"tai":        "-tai",
	"tari":       "-tari",
	"te":         "-te",
	"volitional": "volitional",
	"zu":         "-zu",
}

// Label returns the display label for the reason. Unknown codes render as
// their raw identifier.
func (r Reason) Label() string {
	if label, ok := reasonLabels[r]; ok {
		return label
	}
	return string(r)
}
