package categories

import "strings"

// Default returns the built-in expense category list, suggested when the
// user adds an expense. Any other category is still accepted.
func Default() []string {
	return []string{
		"Groceries", "Transport", "Eating Out", "Bills", "Rent",
		"Entertainment", "Health", "Education", "Subscriptions",
		"Gifts", "Savings", "Other",
	}
}

// Service provides lookup over a category list.
type Service struct {
	names []string
	index map[string]string // lower-cased name -> canonical name
}

// NewService creates a Service. An empty list falls back to Default.
func NewService(names []string) *Service {
	if len(names) == 0 {
		names = Default()
	}
	index := make(map[string]string, len(names))
	for _, n := range names {
		index[strings.ToLower(n)] = n
	}
	return &Service{names: names, index: index}
}

// All returns the category names in their configured order.
func (s *Service) All() []string {
	return s.names
}

// Exists reports whether name matches a known category, ignoring case.
func (s *Service) Exists(name string) bool {
	_, ok := s.index[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Canonical returns the configured spelling for name, or the input
// unchanged when the category is not in the list.
func (s *Service) Canonical(name string) string {
	if c, ok := s.index[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return name
}
