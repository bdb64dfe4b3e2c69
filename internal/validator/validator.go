package validator

import (
	"context"

	"lcintel/internal/domain"
	"lcintel/internal/validator/lc"
)

// Validator is the interface for a single built-in validation rule.
// Rules that do not apply to the presented document set return no checks.
type Validator interface {
	Validate(ctx context.Context, docs *lc.Docs) []domain.ValidationCheck
	RuleKey() string
	RuleName() string
	Severity() domain.ValidationSeverity
}
