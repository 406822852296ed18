package data

import (
	"strings"
	"sync"
)

// Person represents a director. One instance exists per case-insensitive
// name, so two records that share a director share the same *Person and
// counting distinct people is a map-size lookup. FullName keeps the casing
// of the first occurrence seen in the source data.
type Person struct {
	FullName string `json:"full_name"`
}

func (p *Person) String() string {
	return p.FullName
}

// PersonRegistry interns Person values by lowercased name. Get-or-create
// is a check-then-act sequence, so writes are serialized with a mutex;
// both front ends finish loading before any concurrent reads begin, which
// keeps the read path contention-free in practice.
type PersonRegistry struct {
	mu      sync.Mutex
	persons map[string]*Person
}

func NewPersonRegistry() *PersonRegistry {
	return &PersonRegistry{
		persons: make(map[string]*Person),
	}
}

// GetOrCreate returns the shared Person for the given name, creating it on
// first sight. The name is trimmed at this boundary and stored as-is;
// lookup is case-insensitive. An empty or all-whitespace name returns
// ErrEmptyName.
func (pr *PersonRegistry) GetOrCreate(fullname string) (*Person, error) {
	cleaned := strings.TrimSpace(fullname)
	if cleaned == "" {
		return nil, ErrEmptyName
	}

	key := strings.ToLower(cleaned)

	pr.mu.Lock()
	defer pr.mu.Unlock()

	if person, ok := pr.persons[key]; ok {
		return person, nil
	}

	person := &Person{FullName: cleaned}
	pr.persons[key] = person
	return person, nil
}

// Count returns the number of distinct persons created so far. Nothing is
// ever removed from the registry, so the count only grows.
func (pr *PersonRegistry) Count() int {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	return len(pr.persons)
}
