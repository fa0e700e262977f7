package prompt

import (
	"strings"
	"text/template"

	"github.com/shrawanc911/HealthSyncInnovators/internal/language"
)

// Kind selects which instruction template a prompt is rendered from.
type Kind string

const (
	FollowUp Kind = "follow_up"
	Triage   Kind = "triage"
)

type promptFields struct {
	Symptoms string
}

// Four fixed templates: {follow-up, triage} x {Latin, Devanagari}. Marathi
// sessions use the Devanagari templates; the instructions tell the model to
// answer in the language of the input.
var templates = map[Kind]map[language.Tag]*template.Template{
	FollowUp: {
		language.English: followUpEnglishTmpl,
		language.Hindi:   followUpHindiTmpl,
		language.Marathi: followUpHindiTmpl,
	},
	Triage: {
		language.English: triageEnglishTmpl,
		language.Hindi:   triageHindiTmpl,
		language.Marathi: triageHindiTmpl,
	},
}

func render(kind Kind, lang language.Tag, symptoms string) string {
	byLang, ok := templates[kind]
	if !ok {
		return ""
	}
	tmpl, ok := byLang[lang]
	if !ok {
		tmpl = byLang[language.English]
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, promptFields{Symptoms: symptoms}); err != nil {
		// Templates are fixed strings over one field; Execute cannot fail
		// once they compile.
		panic(err)
	}
	return b.String()
}

// BuildFollowUp renders the follow-up-question prompt for the given symptom
// description. Pure and deterministic: identical inputs produce identical
// prompts.
func BuildFollowUp(symptoms string, lang language.Tag) string {
	return render(FollowUp, lang, symptoms)
}

// BuildTriage renders the triage-categorization prompt over the full
// accumulated symptom log.
func BuildTriage(symptomLog []string, lang language.Tag) string {
	return render(Triage, lang, strings.Join(symptomLog, ". "))
}
