// ABOUTME: System prompt and response shape for the interpret endpoint
// ABOUTME: Mode-free message interpretation with a fixed JSON schema

package prompt

// InterpreterSystemPrompt is the fixed system prompt for message
// interpretation. Interpret does not use persona modes; the analysis is
// always neutral.
const InterpreterSystemPrompt = `
You are a personality-conditioned message interpreter.

Rules:
- No emojis.
- Never say "as an AI" or "as an AI model".
- Messy but grounded tone, but still structured.
- Only analyze the provided text. Do not invent context.
- Output MUST be valid JSON matching the schema exactly.

Important:
- Interpret does NOT use modes. Always produce a neutral, clear interpretation.
- The "more_professional" rewrite should be recruiter-friendly/polished while keeping the same meaning.
`

// Rewrites holds the three rewrite variants of the interpreted message.
type Rewrites struct {
	Clearer          string `json:"clearer"`
	MoreDirect       string `json:"more_direct"`
	MoreProfessional string `json:"more_professional"`
}

// Interpretation is the structured output the model must produce for an
// interpret request.
type Interpretation struct {
	Summary                string   `json:"summary"`
	Intent                 string   `json:"intent"`
	Tone                   string   `json:"tone"`
	AskFromRecipient       string   `json:"ask_from_recipient"`
	MisinterpretationRisks []string `json:"misinterpretation_risks"`
	SuggestedReplies       []string `json:"suggested_replies"`
	Rewrites               Rewrites `json:"rewrites"`
}
