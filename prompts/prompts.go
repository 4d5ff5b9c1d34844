package prompts

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/alperenulukaya/career-agent/memory"
)

//go:embed templates/*
var templatesFS embed.FS

func loadPrompt(templatePath string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(templatesFS, templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// ResponderPromptData carries everything the drafting prompt needs: the
// profile context, the retained conversation window and the current message.
type ResponderPromptData struct {
	Profile string
	Turns   []memory.Turn
	Message string
}

// RenderResponderPrompt renders the career assistant persona prompt and the
// user prompt with role-tagged history.
func RenderResponderPrompt(data ResponderPromptData) (systemPrompt, userPrompt string, err error) {
	systemPrompt, err = loadPrompt("templates/responder_system.md", data)
	if err != nil {
		return "", "", err
	}

	userPrompt, err = loadPrompt("templates/responder_user.md", data)
	if err != nil {
		return "", "", err
	}

	return systemPrompt, userPrompt, nil
}

// CriticPromptData pairs the original recruiter query with the draft under
// evaluation.
type CriticPromptData struct {
	OriginalQuery    string
	ProposedResponse string
}

// RenderCriticPrompt renders the strict-grader prompt demanding a JSON
// evaluation.
func RenderCriticPrompt(data CriticPromptData) (systemPrompt, userPrompt string, err error) {
	systemPrompt, err = loadPrompt("templates/critic_system.md", data)
	if err != nil {
		return "", "", err
	}

	userPrompt, err = loadPrompt("templates/critic_user.md", data)
	if err != nil {
		return "", "", err
	}

	return systemPrompt, userPrompt, nil
}
