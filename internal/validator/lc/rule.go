package lc

import (
	"context"

	"lcintel/internal/domain"
)

// rule checks one consistency relationship across the document set.
// Rules that do not apply to the presented documents return no checks.
type rule struct {
	ruleKey  string
	ruleName string
	severity domain.ValidationSeverity
	validate func(*Docs) []domain.ValidationCheck
}

func (r *rule) RuleKey() string                     { return r.ruleKey }
func (r *rule) RuleName() string                    { return r.ruleName }
func (r *rule) Severity() domain.ValidationSeverity { return r.severity }

func (r *rule) Validate(_ context.Context, docs *Docs) []domain.ValidationCheck {
	return r.validate(docs)
}

// check builds a single result entry for a rule.
func (r *rule) check(passed bool, message string) []domain.ValidationCheck {
	return []domain.ValidationCheck{{
		RuleName: r.ruleName,
		Message:  message,
		Passed:   passed,
		Severity: r.severity,
	}}
}
