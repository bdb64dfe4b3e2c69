package validator

import (
	"context"
	"log"

	"lcintel/internal/domain"
	"lcintel/internal/validator/lc"
)

// Engine runs the registered rules over a document set and aggregates
// the results into a report.
type Engine struct {
	registry *Registry
}

// NewEngine creates a validation engine over a rule registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// NewDefaultEngine creates an engine with the full built-in rule set.
func NewDefaultEngine() *Engine {
	registry := NewRegistry()
	for _, v := range lc.DateValidators() {
		registry.Register(v)
	}
	for _, v := range lc.AmountValidators() {
		registry.Register(v)
	}
	for _, v := range lc.PartyValidators() {
		registry.Register(v)
	}
	for _, v := range lc.ShipmentValidators() {
		registry.Register(v)
	}
	for _, v := range lc.ReferenceValidators() {
		registry.Register(v)
	}
	for _, v := range lc.DocumentValidators() {
		registry.Register(v)
	}
	return NewEngine(registry)
}

// Validate runs every applicable rule against the document set. Rules
// that do not apply contribute nothing to the report.
func (e *Engine) Validate(ctx context.Context, docs *lc.Docs) *domain.ValidationReport {
	report := &domain.ValidationReport{}

	for _, v := range e.registry.All() {
		checks := v.Validate(ctx, docs)
		for _, c := range checks {
			report.Checks = append(report.Checks, c)
			report.TotalChecks++
			if c.Passed {
				report.PassedChecks++
				continue
			}
			switch c.Severity {
			case domain.SeverityError:
				report.Errors++
			case domain.SeverityWarning:
				report.Warnings++
			}
		}
	}

	log.Printf("validator.Engine: ran %d checks (%d passed, %d warnings, %d errors)",
		report.TotalChecks, report.PassedChecks, report.Warnings, report.Errors)
	return report
}
