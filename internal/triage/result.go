package triage

// Categories in their canonical English form. The model localizes the
// category string to the input language (e.g. "आपातकालीन स्थिति"), so these
// are reference values for English sessions and for tests, not an exhaustive
// enum.
const (
	CategoryHomeCare     = "Home Care"
	CategoryConsultation = "Requires Doctor Consultation"
	CategoryEmergency    = "Emergency"
)

// TriageResult is the typed form of a triage categorization response. All
// four fields are present after a successful parse.
type TriageResult struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
	Doctor   string `json:"doctor"`
	Remedy   string `json:"remedy"`
}

// FollowUpResult is the typed form of a follow-up-questions response.
type FollowUpResult struct {
	Questions []string `json:"follow_up_questions"`
}

// Sentinel strings the templates instruct the model to use when no
// follow-up is needed.
var noFurtherQuestions = []string{
	"No further questions required.",
	"कोई और प्रश्न आवश्यक नहीं।",
}

// NoFurtherQuestions reports whether the result is the "nothing to ask"
// sentinel rather than a list of real questions. An empty list counts as
// the sentinel too: the model occasionally returns [] instead of the
// instructed sentinel string, and there is nothing to display either way.
func (r FollowUpResult) NoFurtherQuestions() bool {
	if len(r.Questions) == 0 {
		return true
	}
	if len(r.Questions) == 1 {
		for _, s := range noFurtherQuestions {
			if r.Questions[0] == s {
				return true
			}
		}
	}
	return false
}
