package intake

import (
	"fmt"
	"strings"

	"github.com/shrawanc911/HealthSyncInnovators/internal/language"
	"github.com/shrawanc911/HealthSyncInnovators/internal/triage"
)

// messageSet holds the canned bot/system texts for one kiosk language.
type messageSet struct {
	greeting    string
	askAge      string
	askGender   string
	askSymptoms string

	// mismatch takes (detected, selected) language names.
	mismatch string

	thinking       string
	noFollowUp     string
	transportError string
	saveError      string

	categoryLabel string
	reasonLabel   string
	doctorLabel   string
	remedyLabel   string
}

var messages = map[language.Tag]messageSet{
	language.English: {
		greeting:       "Hello! I will help you book the right care. What is your name?",
		askAge:         "Thank you. How old are you?",
		askGender:      "What is your gender?",
		askSymptoms:    "Please describe your symptoms in your own words.",
		mismatch:       "It seems you're typing in %s. Please use %s or return to language selection.",
		thinking:       "Thinking...",
		noFollowUp:     "No further questions required. You can generate your triage result now.",
		transportError: "The assistant is not responding right now. Please try again.",
		saveError:      "Your triage result is ready, but the appointment could not be saved.",
		categoryLabel:  "Category",
		reasonLabel:    "Reason",
		doctorLabel:    "Doctor",
		remedyLabel:    "Remedy",
	},
	language.Hindi: {
		greeting:       "नमस्ते! मैं सही देखभाल चुनने में आपकी मदद करूँगा। आपका नाम क्या है?",
		askAge:         "धन्यवाद। आपकी उम्र क्या है?",
		askGender:      "आपका लिंग क्या है?",
		askSymptoms:    "कृपया अपने लक्षण अपने शब्दों में बताएं।",
		mismatch:       "लगता है आप %s में लिख रहे हैं। कृपया %s का उपयोग करें या भाषा चयन पर लौटें।",
		thinking:       "सोच रहा हूँ...",
		noFollowUp:     "कोई और प्रश्न आवश्यक नहीं। अब आप अपना परिणाम बना सकते हैं।",
		transportError: "सहायक अभी उत्तर नहीं दे रहा है। कृपया पुनः प्रयास करें।",
		saveError:      "आपका परिणाम तैयार है, लेकिन अपॉइंटमेंट सहेजा नहीं जा सका।",
		categoryLabel:  "श्रेणी",
		reasonLabel:    "कारण",
		doctorLabel:    "डॉक्टर",
		remedyLabel:    "उपाय",
	},
	language.Marathi: {
		greeting:       "नमस्कार! योग्य उपचार निवडण्यात मी तुम्हाला मदत करेन। तुमचे नाव काय आहे?",
		askAge:         "धन्यवाद। तुमचे वय किती आहे?",
		askGender:      "तुमचे लिंग काय आहे?",
		askSymptoms:    "कृपया तुमची लक्षणे तुमच्या शब्दांत सांगा।",
		mismatch:       "तुम्ही %s मध्ये लिहित आहात असे दिसते। कृपया %s वापरा किंवा भाषा निवडीकडे परत जा।",
		thinking:       "विचार करत आहे...",
		noFollowUp:     "आणखी प्रश्न आवश्यक नाहीत। आता तुम्ही तुमचा निकाल तयार करू शकता।",
		transportError: "सहाय्यक सध्या उत्तर देत नाही। कृपया पुन्हा प्रयत्न करा।",
		saveError:      "तुमचा निकाल तयार आहे, पण अपॉइंटमेंट जतन होऊ शकली नाही।",
		categoryLabel:  "श्रेणी",
		reasonLabel:    "कारण",
		doctorLabel:    "डॉक्टर",
		remedyLabel:    "उपाय",
	},
}

func messagesFor(lang language.Tag) messageSet {
	if set, ok := messages[lang]; ok {
		return set
	}
	return messages[language.English]
}

func (m messageSet) mismatchText(detected, selected language.Tag) string {
	return fmt.Sprintf(m.mismatch, detected, selected)
}

func (m messageSet) followUpText(questions []string) string {
	return strings.Join(questions, "\n")
}

func (m messageSet) triageText(result triage.TriageResult) string {
	return fmt.Sprintf("%s: %s\n%s: %s\n%s: %s\n%s: %s",
		m.categoryLabel, result.Category,
		m.reasonLabel, result.Reason,
		m.doctorLabel, result.Doctor,
		m.remedyLabel, result.Remedy)
}
