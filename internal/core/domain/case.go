package domain

import (
	"strings"

	"github.com/genvoice/casetrack/internal/pkg/credentials"
)

// Case is a tracked case record, keyed uniquely by its normalized name.
type Case struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewCase validates raw case input: the name is trimmed and lowercased (it
// is the unique key), the description is trimmed. Both fields are required.
func NewCase(name, description string) (*Case, error) {
	var messages []string

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		messages = append(messages, "Name is required")
	}

	description = strings.TrimSpace(description)
	if description == "" {
		messages = append(messages, "Description is required")
	}

	if len(messages) > 0 {
		return nil, NewValidationError(messages...)
	}

	return &Case{Name: name, Description: description}, nil
}

// DisplayName renders the stored name for output.
func (c *Case) DisplayName() string {
	return credentials.NormalizeDisplayName(c.Name)
}
