package provider

import (
	stderrors "errors"

	"github.com/CentralLabFacilities/rosjava-bootstrap/internal/errors"
)

// ErrNotFound is wrapped by every lookup miss
var ErrNotFound = stderrors.New("definition not found")

// Provider supplies definition text by full type name
type Provider interface {
	Lookup(fullName string) (string, bool)
}

// Chain consults providers in the order they were added; the first hit wins
type Chain struct {
	providers []Provider
}

// NewChain creates a chain over providers in precedence order
func NewChain(providers ...Provider) *Chain {
	c := &Chain{}
	for _, p := range providers {
		c.Add(p)
	}
	return c
}

// Add appends p with the lowest precedence so far. Nil providers are ignored.
func (c *Chain) Add(p Provider) {
	if p == nil {
		return
	}
	c.providers = append(c.providers, p)
}

// Len returns the number of providers in the chain
func (c *Chain) Len() int {
	return len(c.providers)
}

// Lookup returns the text from the first provider holding fullName
func (c *Chain) Lookup(fullName string) (string, bool) {
	for _, p := range c.providers {
		if text, ok := p.Lookup(fullName); ok {
			return text, true
		}
	}
	return "", false
}

// Get is Lookup with a MissingDefinitionError for a miss
func (c *Chain) Get(fullName string) (string, error) {
	if text, ok := c.Lookup(fullName); ok {
		return text, nil
	}
	return "", errors.NewMissingDefinitionError("", fullName, ErrNotFound)
}
