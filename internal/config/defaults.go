package config

import "github.com/goliatone/go-commitizen/pkg/model"

// DefaultTemplate composes the conventional commit layout. Optional sections
// are dropped entirely when their answer is empty.
const DefaultTemplate = "{{ prefix }}{% if scope %}({{ scope }}){% endif %}: {{ subject }}" +
	"{% if detail %}\n\n{{ detail }}{% endif %}" +
	"{% if breakingChange %}\n\nBREAKING CHANGE: {{ breakingChange }}{% endif %}" +
	"{% if issue %}\n\n{{ issue }}{% endif %}"

// DefaultForm returns the built-in conventional commit schema. Each call
// returns a fresh copy.
func DefaultForm() model.Form {
	return model.Form{
		Fields: []model.Field{
			model.SelectField{
				FieldSpec: model.FieldSpec{
					Name:        "prefix",
					Description: "Select the type of change that you're committing",
					Required:    true,
				},
				Options: []model.Option{
					{Name: "feat", Description: "A new feature"},
					{Name: "fix", Description: "A bug fix"},
					{Name: "docs", Description: "Documentation only changes"},
					{Name: "style", Description: "Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc)"},
					{Name: "refactor", Description: "A code change that neither fixes a bug nor adds a feature"},
					{Name: "perf", Description: "A code change that improves performance"},
					{Name: "test", Description: "Adding missing tests or correcting existing tests"},
					{Name: "build", Description: "Changes that affect the build system or external dependencies (example scopes: gulp, broccoli, npm)"},
					{Name: "ci", Description: "Changes to our CI configuration files and scripts (example scopes: Travis, Circle, BrowserStack, SauceLabs)"},
					{Name: "chore", Description: "Other changes that don't modify src or test files"},
					{Name: "revert", Description: "Reverts a previous commit"},
				},
			},
			model.InputField{FieldSpec: model.FieldSpec{
				Name:        "scope",
				Description: "What is the scope of this change (e.g. component or file name)",
			}},
			model.InputField{FieldSpec: model.FieldSpec{
				Name:        "subject",
				Description: "Write a short, imperative tense description of the change",
				Required:    true,
			}},
			model.InputField{FieldSpec: model.FieldSpec{
				Name:        "detail",
				Description: "Provide a longer description of the change",
			}},
			model.InputField{FieldSpec: model.FieldSpec{
				Name:        "breakingChange",
				Description: "Describe the breaking changes if exist",
				Prompt:      "BREAKING CHANGE > ",
			}},
			model.InputField{FieldSpec: model.FieldSpec{
				Name:        "issue",
				Description: `Add issue references (e.g. "fix #123", "re #123".)`,
			}},
		},
		Template: DefaultTemplate,
	}
}

// Default returns the configuration used when no file is available.
func Default() Config {
	return Config{
		Picker: Picker{Backend: BackendFZF},
		Form:   DefaultForm(),
	}
}
