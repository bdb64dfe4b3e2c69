package chat

import (
	"context"
	"strings"

	"lcintel/internal/domain"
	"lcintel/internal/verify"
)

// ResearchResult merges document evidence with an external research
// finding for a single query.
type ResearchResult struct {
	Query       string                     `json:"query"`
	DocEvidence []string                   `json:"doc_evidence,omitempty"`
	External    *domain.VerificationResult `json:"external,omitempty"`
}

// ResearchService answers open questions about a session: the document
// text is searched first, then the external research tool runs with the
// document evidence as context.
type ResearchService struct {
	dispatcher *verify.Dispatcher
}

// NewResearchService creates a research service over a verification dispatcher.
func NewResearchService(dispatcher *verify.Dispatcher) *ResearchService {
	return &ResearchService{dispatcher: dispatcher}
}

// maxEvidenceLines caps how many matching document lines feed the
// external research context.
const maxEvidenceLines = 5

// Research runs the document-first research flow. A failing external
// call still returns the document evidence.
func (s *ResearchService) Research(ctx context.Context, snapshot *SessionSnapshot, query string) (*ResearchResult, error) {
	result := &ResearchResult{Query: query}

	if snapshot != nil && snapshot.Extraction != nil {
		result.DocEvidence = searchDocument(snapshot.Extraction.DocumentText, query)
	}

	req := domain.VerificationRequest{
		FieldKey: "research",
		ToolName: verify.ToolDeepResearch,
		Args:     map[string]string{"query": query},
		Value:    query,
	}
	if len(result.DocEvidence) > 0 {
		req.Args["context"] = strings.Join(result.DocEvidence, " | ")
	}

	external, err := s.dispatcher.Run(ctx, req)
	if err != nil {
		if len(result.DocEvidence) > 0 {
			return result, nil
		}
		return nil, err
	}
	result.External = external
	return result, nil
}

// searchDocument returns document lines containing any significant
// query word, case-insensitively.
func searchDocument(text, query string) []string {
	if text == "" {
		return nil
	}
	var words []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if len(w) > 3 {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil
	}

	var evidence []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		matched := false
		for _, w := range words {
			if strings.Contains(lower, w) {
				matched = true
				break
			}
		}
		if matched {
			evidence = append(evidence, trimmed)
			if len(evidence) == maxEvidenceLines {
				break
			}
		}
	}
	return evidence
}
