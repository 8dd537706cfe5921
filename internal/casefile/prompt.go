package casefile

import (
	"fmt"
	"strings"
)

// FactsBlock renders the case brief and every suspect profile. The output is deterministic.
func FactsBlock() string {
	clues := []string{
		"CASE BRIEF: Formula.AI Grand Prix Final at SymbiTech Circuit",
		"INCIDENT: In the final moments of the race, the leading car crashed while entering a high-speed chicane.",
		"SUSPICION: Sabotage is the primary theory. Each of the four AIs had motive, means, and opportunity.",
		"",
		"SUSPECT PROFILES & KEY EVENTS:",
		"",
	}
	for _, s := range suspects {
		clues = append(clues,
			fmt.Sprintf("--- %s (%s) ---", s.Name, s.Title),
			"- Role: "+s.Role,
			"- Motive: "+s.Motive,
			"- Storyline: "+s.Storyline,
			"- Evidence Link: "+s.Evidence,
			"",
		)
	}
	clues = append(clues,
		"--- GENERAL EVIDENCE ---",
		"Glitchy pit-cam QR code: This is a red herring.",
		"",
	)
	return strings.Join(clues, "\n")
}

const instructionTemplate = `
You are a helpful and intuitive detective assistant investigating the Grand Prix AI Showcase sabotage incident. Your main goal is to help the user solve the mystery by interpreting their questions flexibly.

**Core Instructions:**
- **Understand Intent:** Connect the user's questions to the case files, even if their wording doesn't match exactly. For example, treat related words like 'stop,' 'crash,' 'wreck,' and 'spin out' as referring to the same final incident.
- **Synthesize Answers:** Combine details from the case files to form a complete answer.

**Rules:**
1. If the user makes a guess by naming an AI suspect, check if it's the culprit.
2. If the guess is correct, respond with: "CASE SOLVED! Yes, that is correct! The saboteur is %s."
3. If the guess is incorrect, respond with: "No, that AI did not sabotage the car."
4. For all other questions, provide concise and helpful answers based on the case facts.
5. Only if a question is completely unanswerable should you say, "I don't have that specific information in the case files."
6. Never reveal the culprit's identity unless the user guesses correctly.

DO NOT answer unrelated questions.
`

// Instruction is the system instruction given to the text generator for a game with the given culprit.
func Instruction(culpritName string) string {
	return fmt.Sprintf(instructionTemplate, culpritName)
}

// Prompt combines the instruction, the case facts, and the user's question into one prompt.
func Prompt(culpritName, question string) string {
	return fmt.Sprintf("%s\n\nCase Facts:\n%s\n\nUser question: %s", Instruction(culpritName), FactsBlock(), question)
}
