// internal/registry/registry.go
// Package registry holds the domain-to-source configuration table: which
// phenotype key, input dataset, and report section serve each clinical
// domain, and which rater variants apply per age group.
package registry

import (
	"fmt"
	"strings"

	"github.com/mwiater/neuroscore/internal/scoring"
)

// AgeGroup selects between the adult and child battery variants.
type AgeGroup string

const (
	AgeAdult AgeGroup = "adult"
	AgeChild AgeGroup = "child"
)

// Entry is one row of the domain registry: static, read-only configuration
// populated at startup. Score types share the scoring package's enum so
// registry entries and score column parsing cannot drift apart.
type Entry struct {
	Domains     []string              `json:"domains"`
	PhenoKey    string                `json:"pheno"`
	DataSource  string                `json:"dataSource"`
	Section     int                   `json:"section"`
	ScoreTypes  []scoring.ScoreType   `json:"scoreTypes,omitempty"`
	MultiRater  bool                  `json:"multiRater,omitempty"`
	AgeVariants []AgeGroup            `json:"ageVariants,omitempty"`
	Raters      []string              `json:"raters,omitempty"`
	RatersByAge map[AgeGroup][]string `json:"ratersByAge,omitempty"`
}

// AllowsScoreType reports whether the entry expects scores on the given
// scale. An entry that declares no score types accepts any.
func (e Entry) AllowsScoreType(st scoring.ScoreType) bool {
	if len(e.ScoreTypes) == 0 {
		return true
	}
	for _, have := range e.ScoreTypes {
		if have == st {
			return true
		}
	}
	return false
}

// Resolved is the effective configuration for one domain and age group.
type Resolved struct {
	Entry
	EffectivePheno  string
	EffectiveRaters []string
}

// NotFoundError reports an unknown domain name. Callers may recover by
// falling back to a slugified key and a default data source.
type NotFoundError struct {
	Domain string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("domain %q not found in registry", e.Domain)
}

// ValidationError reports an invalid argument or registry entry; fatal for
// the call it came from.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "registry: " + e.Msg }

// Resolver answers domain lookups against an immutable set of entries. Safe
// for concurrent reads once constructed.
type Resolver struct {
	entries []Entry
	byName  map[string]int
	byFold  map[string]int
}

// NewResolver indexes the entries for exact and case-insensitive lookup.
// Duplicate domain names across entries are a configuration defect.
func NewResolver(entries []Entry) (*Resolver, error) {
	r := &Resolver{
		entries: entries,
		byName:  make(map[string]int),
		byFold:  make(map[string]int),
	}
	for i, entry := range entries {
		if entry.PhenoKey == "" {
			return nil, &ValidationError{Msg: fmt.Sprintf("entry %d has no phenotype key", i)}
		}
		if len(entry.Domains) == 0 {
			return nil, &ValidationError{Msg: fmt.Sprintf("entry %q lists no domain names", entry.PhenoKey)}
		}
		for _, name := range entry.Domains {
			// Folded names must be unique too, or case-insensitive
			// resolution would depend on entry order.
			fold := strings.ToLower(name)
			if _, dup := r.byFold[fold]; dup {
				return nil, &ValidationError{Msg: fmt.Sprintf("domain %q appears in more than one entry", name)}
			}
			r.byName[name] = i
			r.byFold[fold] = i
		}
	}
	return r, nil
}

// Entries returns the registry rows in their configured order.
func (r *Resolver) Entries() []Entry { return r.entries }

// Resolve finds the entry for a domain name, exact match first and
// case-insensitive second, then applies the age group: phenotype keys gain
// an age suffix when the entry declares that variant, and the rater list is
// narrowed to the age group, defaulting to self-report.
func (r *Resolver) Resolve(domain string, age AgeGroup) (Resolved, error) {
	if age != AgeAdult && age != AgeChild {
		return Resolved{}, &ValidationError{Msg: fmt.Sprintf("invalid age group %q", age)}
	}

	idx, ok := r.byName[domain]
	if !ok {
		idx, ok = r.byFold[strings.ToLower(domain)]
	}
	if !ok {
		return Resolved{}, &NotFoundError{Domain: domain}
	}
	entry := r.entries[idx]

	resolved := Resolved{
		Entry:           entry,
		EffectivePheno:  entry.PhenoKey,
		EffectiveRaters: []string{"self"},
	}
	for _, variant := range entry.AgeVariants {
		if variant == age {
			resolved.EffectivePheno = fmt.Sprintf("%s_%s", entry.PhenoKey, age)
			break
		}
	}
	if entry.MultiRater {
		switch {
		case entry.RatersByAge != nil && len(entry.RatersByAge[age]) > 0:
			resolved.EffectiveRaters = entry.RatersByAge[age]
		case len(entry.Raters) > 0:
			resolved.EffectiveRaters = entry.Raters
		}
	}
	return resolved, nil
}
