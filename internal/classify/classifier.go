// Package classify assigns a department and a sentiment to normalized
// articles using deterministic keyword matching. It deliberately is not a
// model: results must stay explainable and reproducible.
package classify

import (
	"strings"

	"newspulse/backend/internal/model"
)

// Classifier matches keyword rules against article text. It is pure and safe
// for concurrent use.
type Classifier struct {
	rules Rules
}

// New creates a classifier with the given rules.
func New(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the department and sentiment for an article's title and
// content. Departments are evaluated in the fixed declared order, first match
// wins; no match means DepartmentOther. Positive keywords take precedence
// over negative ones: a text mentioning both "growth" and "crisis" is
// labeled positive. Keep that precedence as-is unless product intent changes.
func (c *Classifier) Classify(title, content string) (model.Department, model.Sentiment) {
	combined := strings.ToLower(title + " " + content)
	return c.department(combined), c.sentiment(combined)
}

func (c *Classifier) department(text string) model.Department {
	for _, dept := range c.rules.DepartmentOrder {
		if containsAny(text, c.rules.DepartmentKeywords[dept]) {
			return dept
		}
	}
	return model.DepartmentOther
}

func (c *Classifier) sentiment(text string) model.Sentiment {
	if containsAny(text, c.rules.PositiveKeywords) {
		return model.SentimentPositive
	}
	if containsAny(text, c.rules.NegativeKeywords) {
		return model.SentimentNegative
	}
	return model.SentimentNeutral
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
