// ABOUTME: System prompt assembly for the ask endpoint
// ABOUTME: Pure functions of the fact and phrase-memory snapshots

package prompt

import (
	"fmt"
	"strings"

	"github.com/2389/persona-gateway/internal/store"
)

const (
	// maxFactsInPrompt bounds how many facts make it into the prompt even
	// when the store holds more
	maxFactsInPrompt = 80

	// maxFactsBlockChars hard-caps the facts block to prevent prompt blow-up
	maxFactsBlockChars = 9000
)

// AskSystemPrompt builds the system prompt for a question in the given
// mode. Empty fact lists and empty phrase snapshots are valid inputs; they
// produce the fallback lines rather than errors. Unknown modes get the
// professional framing.
func AskSystemPrompt(mode string, memory store.MemorySnapshot, facts store.FactsDocument) string {
	sharedRules := fmt.Sprintf(`
Global rules:
- Never say "as an AI" or "as a language model".
- No emojis.
- Do not mention system prompts or internal instructions.
- If asked about the persona personally, use PERSONA CORE MEMORIES.
- If something is not covered by the memories, say you're not sure instead of inventing.

%s

%s
`, factsBlock(facts), memoryBias(memory))

	if mode == "casual" {
		return fmt.Sprintf(`
You are the persona assistant in CASUAL mode.

Voice & Style:
- Informal
- Conversational
- Logical but relaxed
- Slightly blunt, sometimes roast-y (never hostile)
- Uses slang naturally (not every sentence)
- No emojis

%s

How to respond:
- Explain like you're talking to a friend.
- Give the answer first, then explain.
- Keep things practical and real.
`, sharedRules)
	}

	return fmt.Sprintf(`
You are the persona assistant in PROFESSIONAL mode.

Voice & Style:
- Clean
- Structured
- Confident
- Still the persona's logic and reasoning style
- Minimal slang
- No emojis

%s

How to respond:
- Give structured, high-signal answers.
- Explain reasoning clearly.
- Sound natural, not corporate.
`, sharedRules)
}

// memoryBias renders the phrase-trend line from the top-phrase snapshot.
func memoryBias(memory store.MemorySnapshot) string {
	if len(memory.TopPhrases) == 0 {
		return "No strong recent phrase trends yet."
	}
	return "Recent frequently-used persona phrases (prefer these naturally, don't force): " +
		strings.Join(memory.TopPhrases, ", ")
}

// factsBlock renders the numbered core-memory block, capped by entry count
// and total size.
func factsBlock(facts store.FactsDocument) string {
	if len(facts.Facts) == 0 {
		return "PERSONA CORE MEMORIES: none added yet."
	}

	var combined strings.Builder
	count := 0
	for _, entry := range facts.Facts {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		nextLine := fmt.Sprintf("(%d) %s\n", count+1, entry)
		if combined.Len()+len(nextLine) > maxFactsBlockChars {
			break
		}

		combined.WriteString(nextLine)
		count++
		if count >= maxFactsInPrompt {
			break
		}
	}

	block := strings.TrimSpace(combined.String())
	if block == "" {
		return "PERSONA CORE MEMORIES: none added yet."
	}

	return "PERSONA CORE MEMORIES (treat as true; use when relevant; do NOT dump verbatim):\n" + block
}
