package prompt

import "strings"

// GroundedBuilder assembles the grounding prompt for a retrieval query: the
// instruction block, the retrieved context, and the user's question folded
// into one human turn. The instruction tells the model to answer only from
// the context and admit ignorance otherwise.
type GroundedBuilder struct {
	contextBlock string
	question     string
}

func NewGroundedBuilder(contextBlock, question string) *GroundedBuilder {
	return &GroundedBuilder{
		contextBlock: contextBlock,
		question:     question,
	}
}

func (b *GroundedBuilder) Build() string {
	var prompt strings.Builder

	b.writeInstructions(&prompt)
	b.writeContext(&prompt)
	b.writeQuestion(&prompt)

	return prompt.String()
}

func (b *GroundedBuilder) writeInstructions(prompt *strings.Builder) {
	prompt.WriteString("You are a helpful AI assistant. Answer questions based on the document context below.\n")
	prompt.WriteString("If the answer is not in the context, say you don't know. Be concise and factual.\n\n")
}

func (b *GroundedBuilder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("DOCUMENT CONTEXT:\n")
	prompt.WriteString(b.contextBlock)
	prompt.WriteString("\n\n---\n")
}

func (b *GroundedBuilder) writeQuestion(prompt *strings.Builder) {
	prompt.WriteString("Based on the above context, please answer the following question.\n\n")
	prompt.WriteString("QUESTION: ")
	prompt.WriteString(b.question)
}
