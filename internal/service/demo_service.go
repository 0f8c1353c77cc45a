package service

import (
	"fmt"
	"strings"

	"doc-chat-be/internal/constant"
	"doc-chat-be/internal/dto"
)

// IDemoService answers questions from the pre-loaded demo Q&A set so the
// product can be tried without an API key.
type IDemoService interface {
	Answer(question string) *dto.DemoChatResponse
}

type demoService struct{}

func NewDemoService() IDemoService {
	return &demoService{}
}

func (s *demoService) Answer(question string) *dto.DemoChatResponse {
	if matched := findDemoAnswer(question); matched != nil {
		return &dto.DemoChatResponse{
			Answer:  matched.Answer,
			Sources: matched.Sources,
			Demo:    true,
		}
	}

	return &dto.DemoChatResponse{
		Answer:  fallbackAnswer(question),
		Sources: []string{},
		Demo:    true,
	}
}

// findDemoAnswer matches a question against the canned set: exact keyword
// containment first, then loose word overlap.
func findDemoAnswer(question string) *constant.DemoQA {
	q := strings.ToLower(question)

	for i := range constant.DemoAnswers {
		for _, keyword := range constant.DemoAnswers[i].Keywords {
			if strings.Contains(q, strings.ToLower(keyword)) {
				return &constant.DemoAnswers[i]
			}
		}
	}

	words := make([]string, 0)
	for _, w := range strings.Fields(q) {
		if len(w) > 4 {
			words = append(words, w)
		}
	}
	for i := range constant.DemoAnswers {
		for _, keyword := range constant.DemoAnswers[i].Keywords {
			kw := strings.ToLower(keyword)
			for _, w := range words {
				if strings.Contains(kw, w) || strings.Contains(w, kw) {
					return &constant.DemoAnswers[i]
				}
			}
		}
	}

	return nil
}

func fallbackAnswer(question string) string {
	var sb strings.Builder
	sb.WriteString("This is a **demo mode** response using pre-loaded data from the HK I&T Blueprint.\n\n")
	fmt.Fprintf(&sb, "Your question: *%q*\n\n", question)
	sb.WriteString("I don't have a pre-set answer for this specific question in demo mode. Here are some questions I can answer well:\n\n")
	for _, suggested := range constant.DemoSuggestedQuestions {
		sb.WriteString("- ")
		sb.WriteString(suggested)
		sb.WriteString("\n")
	}
	sb.WriteString("\nTo ask any question about your own documents, please provide your own API key.")
	return sb.String()
}
