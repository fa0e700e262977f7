package language

// Tag identifies one of the languages selectable on the kiosk. The empty
// tag means the writing system of a text could not be recognized.
type Tag string

const (
	Unknown Tag = ""
	English Tag = "english"
	Hindi   Tag = "hindi"
	Marathi Tag = "marathi"
)

func (t Tag) Valid() bool {
	return t == English || t == Hindi || t == Marathi
}

// Devanagari reports whether the language is written in Devanagari script.
func (t Tag) Devanagari() bool {
	return t == Hindi || t == Marathi
}

const (
	devanagariLo = 0x0900
	devanagariHi = 0x097F
)

// DetectScript classifies the writing system of text. Text made up entirely
// of Basic Latin characters and whitespace is tagged English; text
// containing at least one Devanagari character is tagged Hindi. Anything
// else (CJK, emoji, non-ASCII digits, ...) returns Unknown.
//
// This is a script classifier, not a language classifier: Hindi and Marathi
// share the Devanagari script and cannot be told apart from characters
// alone. Callers that track a selected language should use Detect, which
// applies the selection as a tie-break.
func DetectScript(text string) Tag {
	if text == "" {
		return Unknown
	}

	latinOnly := true
	for _, r := range text {
		if r >= devanagariLo && r <= devanagariHi {
			return Hindi
		}
		if r > 0x7F {
			latinOnly = false
		}
	}

	if latinOnly {
		return English
	}
	return Unknown
}

// Detect classifies text, resolving the Devanagari family with the
// session's currently selected language: if the selection is already a
// Devanagari language it is kept, otherwise the family defaults to Hindi.
func Detect(text string, current Tag) Tag {
	tag := DetectScript(text)
	if tag.Devanagari() && current.Devanagari() {
		return current
	}
	return tag
}
