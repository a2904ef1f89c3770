package openai

import (
	"fmt"

	"github.com/poiesic/qaforge/core"
)

// defaultSystemPrompt instructs the model on the kind of pairs to produce.
// It can be overridden through ai.Config.SystemPrompt.
const defaultSystemPrompt = "As a highly skilled assistant, you are tasked with generating informative question and answer pairs from the provided text. Focus on crafting Q&A pairs that are relevant to the primary subject matter of the text. Your questions should be engaging and answers concise, avoiding details of specific examples that are not representative of the text's broader themes. Aim for a comprehensive understanding that captures the essence of the content without being sidetracked by less relevant details."

// userPromptTemplate embeds a chunk verbatim between delimiter markers and
// appends the task description naming the qa_pairs result key.
const userPromptTemplate = `Here is the user input to work with:
---
%s
---
Your task is to dissect this text for its central themes and most significant details, crafting question and answer pairs that reflect the core message and primary content. Avoid questions about specific examples that do not contribute to the overall understanding of the subject. The questions should cover different types: factual, inferential, thematic, etc., and answers must be concise and pertinent to the text's main intent. Please generate as many relevant question and answers as possible, focusing on the significance and relevance of each to the text's main topic. Provide the results in the following JSON format:
{
    "qa_pairs": [
        {
            "question": "<Your question>",
            "answer": "<Your answer>"
        }
    ]
}`

// buildUserPrompt renders the user instruction for one chunk.
func buildUserPrompt(chunk core.TextChunk) string {
	return fmt.Sprintf(userPromptTemplate, chunk)
}
