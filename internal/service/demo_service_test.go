package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doc-chat-be/internal/constant"
)

func TestDemoServiceKeywordMatch(t *testing.T) {
	s := NewDemoService()

	res := s.Answer("What is the Smart City Blueprint about?")
	require.NotNil(t, res)
	assert.True(t, res.Demo)
	assert.NotEmpty(t, res.Answer)
	assert.NotContains(t, res.Answer, "don't have a pre-set answer")
	assert.NotEmpty(t, res.Sources)
}

func TestDemoServiceSuggestedQuestionsAnswered(t *testing.T) {
	s := NewDemoService()

	for _, question := range constant.DemoSuggestedQuestions {
		res := s.Answer(question)
		require.NotNil(t, res, question)
		assert.NotContains(t, res.Answer, "don't have a pre-set answer", question)
	}
}

func TestDemoServiceFallback(t *testing.T) {
	s := NewDemoService()

	res := s.Answer("zzzz qqqq")
	require.NotNil(t, res)
	assert.True(t, res.Demo)
	assert.Contains(t, res.Answer, "don't have a pre-set answer")
	assert.Empty(t, res.Sources)
	// The fallback lists questions the demo set can actually answer.
	assert.Contains(t, res.Answer, constant.DemoSuggestedQuestions[0])
}
