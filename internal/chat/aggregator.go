// Package chat answers questions about a session's documents and routes
// pipeline actions picked up from conversation.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"lcintel/internal/config"
	"lcintel/internal/domain"
	"lcintel/internal/i18n"
	"lcintel/internal/port"
)

// SessionSnapshot is the read-only session context the assistant
// answers from.
type SessionSnapshot struct {
	Extraction   *domain.ExtractionResult
	Validation   *domain.ValidationReport
	Verification map[string]*domain.VerificationResult
}

// Reply is a single turn of the conversation.
type Reply struct {
	Message string `json:"message"`
	// ActionTaken names the pipeline action the message was routed to,
	// empty for plain answers.
	ActionTaken string `json:"action_taken,omitempty"`
	Language    string `json:"language"`
}

// Aggregator builds context-aware prompts over the session state and
// completes them with a chat model.
type Aggregator struct {
	model         port.ChatModel
	maxDocChars   int
	historyWindow int
}

// NewAggregator creates a chat aggregator. Zero config values fall back
// to an 8000 character document budget and a 10 turn history window.
func NewAggregator(model port.ChatModel, cfg *config.ChatConfig) *Aggregator {
	maxDocChars := 8000
	historyWindow := 10
	if cfg != nil {
		if cfg.MaxDocChars > 0 {
			maxDocChars = cfg.MaxDocChars
		}
		if cfg.HistoryWindow > 0 {
			historyWindow = cfg.HistoryWindow
		}
	}
	return &Aggregator{
		model:         model,
		maxDocChars:   maxDocChars,
		historyWindow: historyWindow,
	}
}

// Chat appends the user message to the conversation, produces the
// assistant reply, and appends that too. Model failures become an
// assistant-visible message rather than an error: the conversation
// always advances by exactly two turns.
func (a *Aggregator) Chat(ctx context.Context, conv *domain.ConversationState, snapshot *SessionSnapshot, message, lang string) *Reply {
	lang = i18n.Normalize(lang)
	conv.Append(domain.RoleUser, message)

	if intent := DetectIntent(message); intent != IntentNone {
		reply := fmt.Sprintf("I'll route this to the %s step.", intent)
		conv.Append(domain.RoleAssistant, reply)
		return &Reply{Message: reply, ActionTaken: string(intent), Language: lang}
	}

	system := a.buildSystemPrompt(snapshot, lang)
	history := conv.Tail(a.historyWindow)

	answer, err := a.model.Complete(ctx, system, history)
	if err != nil {
		log.Printf("chat.Aggregator: completion failed: %v", err)
		answer = fmt.Sprintf("An error occurred: %v", err)
	}
	if answer == "" {
		answer = "Sorry, I couldn't generate a response."
	}

	conv.Append(domain.RoleAssistant, answer)
	return &Reply{Message: answer, Language: lang}
}

func (a *Aggregator) buildSystemPrompt(snapshot *SessionSnapshot, lang string) string {
	var b strings.Builder
	b.WriteString("You are a helpful trade-finance document review assistant.\n")
	b.WriteString(i18n.ResponseInstruction(lang))
	b.WriteString("\n")

	if snapshot != nil && snapshot.Extraction != nil {
		if len(snapshot.Extraction.Fields) > 0 {
			fieldsJSON, err := json.MarshalIndent(snapshot.Extraction.Fields, "", "  ")
			if err == nil {
				b.WriteString("\nExtracted L/C application data:\n")
				b.Write(fieldsJSON)
				b.WriteString("\n")
			}
		}
		if snapshot.Extraction.DocumentText != "" {
			excerpt := snapshot.Extraction.DocumentText
			if len(excerpt) > a.maxDocChars {
				excerpt = excerpt[:a.maxDocChars]
			}
			b.WriteString("\nRaw document text (excerpt):\n")
			b.WriteString(excerpt)
			b.WriteString("\n")
		}
	}

	if snapshot != nil && snapshot.Validation != nil {
		b.WriteString(fmt.Sprintf("\nConsistency report: %d checks, %d passed, %d warnings, %d errors.\n",
			snapshot.Validation.TotalChecks, snapshot.Validation.PassedChecks,
			snapshot.Validation.Warnings, snapshot.Validation.Errors))
		for _, c := range snapshot.Validation.Checks {
			if !c.Passed {
				b.WriteString(fmt.Sprintf("- [%s] %s: %s\n", c.Severity, c.RuleName, c.Message))
			}
		}
	}

	if snapshot != nil && len(snapshot.Verification) > 0 {
		b.WriteString("\nField verification findings:\n")
		fieldKeys := make([]string, 0, len(snapshot.Verification))
		for field := range snapshot.Verification {
			fieldKeys = append(fieldKeys, field)
		}
		sort.Strings(fieldKeys)
		for _, field := range fieldKeys {
			res := snapshot.Verification[field]
			if res == nil {
				continue
			}
			status := "verified"
			if !res.Verified {
				status = "NOT verified"
			}
			b.WriteString(fmt.Sprintf("- %s (%s): %s\n", field, status, res.Message))
		}
	}

	b.WriteString("\nAnswer concisely and accurately based on the document data. If you cannot answer from the available data, say so.")
	return b.String()
}
