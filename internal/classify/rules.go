package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"newspulse/backend/internal/model"
)

// Rules is the keyword configuration driving classification. It is data, not
// code: a deployment can swap the tables via YAML without touching the
// matching logic.
type Rules struct {
	// DepartmentOrder fixes the evaluation order; the first department whose
	// keyword list matches wins, regardless of how many keywords any later
	// department would match.
	DepartmentOrder    []model.Department            `yaml:"departmentOrder"`
	DepartmentKeywords map[model.Department][]string `yaml:"departmentKeywords"`
	PositiveKeywords   []string                      `yaml:"positiveKeywords"`
	NegativeKeywords   []string                      `yaml:"negativeKeywords"`
}

// DefaultRules returns the built-in keyword tables.
func DefaultRules() Rules {
	return Rules{
		DepartmentOrder: []model.Department{
			model.DepartmentFinance,
			model.DepartmentHealth,
			model.DepartmentEducation,
			model.DepartmentDefense,
			model.DepartmentAgriculture,
			model.DepartmentTransport,
		},
		DepartmentKeywords: map[model.Department][]string{
			model.DepartmentFinance:     {"finance", "economy", "budget", "stock", "market", "bank", "investment"},
			model.DepartmentHealth:      {"health", "hospital", "covid", "disease", "doctor", "medical", "vaccine"},
			model.DepartmentEducation:   {"education", "school", "university", "student", "teaching", "college"},
			model.DepartmentDefense:     {"defense", "military", "war", "army", "security", "terrorist", "weapon"},
			model.DepartmentAgriculture: {"farm", "agriculture", "crop", "farmer", "food", "rural"},
			model.DepartmentTransport:   {"transport", "train", "road", "highway", "traffic", "airport", "railway"},
		},
		PositiveKeywords: []string{"growth", "increase", "improve", "success", "benefit", "good", "positive", "gain"},
		NegativeKeywords: []string{"decline", "decrease", "crisis", "failure", "problem", "bad", "negative", "loss"},
	}
}

// LoadRules reads keyword rules from a YAML file. Missing sections fall back
// to the defaults so a file can override just one table.
func LoadRules(path string) (Rules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read keyword rules: %w", err)
	}

	var loaded Rules
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return Rules{}, fmt.Errorf("parse keyword rules: %w", err)
	}

	defaults := DefaultRules()
	if len(loaded.DepartmentOrder) == 0 {
		loaded.DepartmentOrder = defaults.DepartmentOrder
	}
	if len(loaded.DepartmentKeywords) == 0 {
		loaded.DepartmentKeywords = defaults.DepartmentKeywords
	}
	if len(loaded.PositiveKeywords) == 0 {
		loaded.PositiveKeywords = defaults.PositiveKeywords
	}
	if len(loaded.NegativeKeywords) == 0 {
		loaded.NegativeKeywords = defaults.NegativeKeywords
	}

	return loaded, nil
}
