package agent

import (
	"strings"
)

// Language selects which canned user-facing message to send. Detection is a
// cheap heuristic, not real language identification: Turkish-specific letters
// or a few common Turkish words are enough, everything else falls back to
// English.
type Language string

const (
	English Language = "en"
	Turkish Language = "tr"
)

const turkishLetters = "çğıöşüÇĞİÖŞÜ"

var turkishWords = []string{
	"merhaba",
	"teşekkür",
	"maaş",
	"ücret",
	"pozisyon",
	"müsait",
	"çalışıyor",
	"iş teklifi",
	"görüşme",
}

func DetectLanguage(text string) Language {
	if strings.ContainsAny(text, turkishLetters) {
		return Turkish
	}

	lower := strings.ToLower(text)
	for _, word := range turkishWords {
		if strings.Contains(lower, word) {
			return Turkish
		}
	}

	return English
}

// escalationAck is the fixed acknowledgment sent when an inquiry is routed to
// a human instead of auto-answered.
func escalationAck(lang Language) string {
	if lang == Turkish {
		return "Sorunuzu not ettim, Alperen bu konuda size en kısa sürede bizzat dönüş yapacak."
	}
	return "I have noted your inquiry and Alperen will get back to you personally regarding this matter."
}

// temporaryIssueMessage is the apology sent when no draft was produced at all.
func temporaryIssueMessage(lang Language) string {
	if lang == Turkish {
		return "Şu anda geçici bir teknik sorun yaşıyorum. Lütfen birkaç dakika sonra tekrar deneyin."
	}
	return "I am experiencing a temporary technical issue. Please try again in a few minutes."
}
