// internal/registry/registry_test.go
package registry

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/mwiater/neuroscore/internal/scoring"
)

func defaultResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(Default())
	if err != nil {
		t.Fatalf("NewResolver(Default()) failed: %v", err)
	}
	return r
}

func TestResolveExactMatch(t *testing.T) {
	r := defaultResolver(t)
	resolved, err := r.Resolve("Memory", AgeAdult)
	if err != nil {
		t.Fatalf("Resolve(Memory) failed: %v", err)
	}
	if resolved.EffectivePheno != "memory" {
		t.Errorf("effective pheno = %q, want memory", resolved.EffectivePheno)
	}
	if resolved.DataSource != "neurocog" {
		t.Errorf("data source = %q, want neurocog", resolved.DataSource)
	}
	if resolved.Section != 6 {
		t.Errorf("section = %d, want 6", resolved.Section)
	}
	if !reflect.DeepEqual(resolved.EffectiveRaters, []string{"self"}) {
		t.Errorf("raters = %v, want [self]", resolved.EffectiveRaters)
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	r := defaultResolver(t)
	resolved, err := r.Resolve("memory", AgeAdult)
	if err != nil {
		t.Fatalf("Resolve(memory) failed: %v", err)
	}
	if resolved.PhenoKey != "memory" {
		t.Errorf("pheno = %q, want memory", resolved.PhenoKey)
	}
}

func TestResolveNotFound(t *testing.T) {
	r := defaultResolver(t)
	_, err := r.Resolve("Nonexistent Domain", AgeAdult)
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("unknown domain: got %v, want NotFoundError", err)
	}
	if nfe.Domain != "Nonexistent Domain" {
		t.Errorf("NotFoundError.Domain = %q", nfe.Domain)
	}
}

func TestResolveAgeVariant(t *testing.T) {
	r := defaultResolver(t)
	resolved, err := r.Resolve("ADHD", AgeChild)
	if err != nil {
		t.Fatalf("Resolve(ADHD, child) failed: %v", err)
	}
	if resolved.EffectivePheno != "adhd_child" {
		t.Errorf("effective pheno = %q, want adhd_child", resolved.EffectivePheno)
	}
	if !reflect.DeepEqual(resolved.EffectiveRaters, []string{"self", "parent", "teacher"}) {
		t.Errorf("child raters = %v", resolved.EffectiveRaters)
	}

	resolved, err = r.Resolve("ADHD", AgeAdult)
	if err != nil {
		t.Fatalf("Resolve(ADHD, adult) failed: %v", err)
	}
	if resolved.EffectivePheno != "adhd_adult" {
		t.Errorf("effective pheno = %q, want adhd_adult", resolved.EffectivePheno)
	}
	if !reflect.DeepEqual(resolved.EffectiveRaters, []string{"self", "observer"}) {
		t.Errorf("adult raters = %v", resolved.EffectiveRaters)
	}
}

// TestResolveFlatRaterList covers the flat-list form: the same raters apply
// to every age group the entry serves.
func TestResolveFlatRaterList(t *testing.T) {
	r := defaultResolver(t)
	resolved, err := r.Resolve("Adaptive Functioning", AgeChild)
	if err != nil {
		t.Fatalf("Resolve(Adaptive Functioning, child) failed: %v", err)
	}
	if !reflect.DeepEqual(resolved.EffectiveRaters, []string{"parent", "teacher"}) {
		t.Errorf("raters = %v, want [parent teacher]", resolved.EffectiveRaters)
	}
	if resolved.EffectivePheno != "adaptive_child" {
		t.Errorf("effective pheno = %q, want adaptive_child", resolved.EffectivePheno)
	}
}

func TestResolveInvalidAgeGroup(t *testing.T) {
	r := defaultResolver(t)
	_, err := r.Resolve("Memory", AgeGroup("toddler"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("invalid age group: got %v, want ValidationError", err)
	}
}

func TestAllowsScoreType(t *testing.T) {
	entry := Entry{ScoreTypes: []scoring.ScoreType{scoring.ScoreScaled, scoring.ScoreT}}
	if !entry.AllowsScoreType(scoring.ScoreT) {
		t.Error("declared score type should be allowed")
	}
	if entry.AllowsScoreType(scoring.ScorePercentile) {
		t.Error("undeclared score type should be rejected")
	}
	if !(Entry{}).AllowsScoreType(scoring.ScoreZ) {
		t.Error("entry without declared score types should allow any")
	}
}

func TestDefaultScoreTypesParse(t *testing.T) {
	for _, entry := range Default() {
		for _, st := range entry.ScoreTypes {
			parsed, err := scoring.ParseScoreType(string(st))
			if err != nil {
				t.Errorf("%s: score type %q does not parse: %v", entry.PhenoKey, st, err)
				continue
			}
			if parsed != st {
				t.Errorf("%s: score type %q reparses as %q", entry.PhenoKey, st, parsed)
			}
		}
	}
}

func TestNewResolverRejectsDuplicates(t *testing.T) {
	entries := []Entry{
		{Domains: []string{"Memory"}, PhenoKey: "memory", DataSource: "neurocog", Section: 1},
		{Domains: []string{"Memory"}, PhenoKey: "memory2", DataSource: "neurocog", Section: 2},
	}
	if _, err := NewResolver(entries); err == nil {
		t.Fatal("duplicate domain names should have failed")
	}
}

func TestNewResolverRejectsCaseInsensitiveDuplicates(t *testing.T) {
	entries := []Entry{
		{Domains: []string{"Memory"}, PhenoKey: "memory", DataSource: "neurocog", Section: 1},
		{Domains: []string{"MEMORY"}, PhenoKey: "memory2", DataSource: "neurocog", Section: 2},
	}
	_, err := NewResolver(entries)
	if err == nil {
		t.Fatal("domain names differing only by case should have failed")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestValidateJSON(t *testing.T) {
	valid := `[
	  {"domains": ["Memory"], "pheno": "memory", "dataSource": "neurocog", "section": 6}
	]`
	if err := ValidateJSON([]byte(valid)); err != nil {
		t.Fatalf("valid registry rejected: %v", err)
	}

	badAge := `[
	  {"domains": ["Memory"], "pheno": "memory", "dataSource": "neurocog", "section": 6,
	   "ageVariants": ["toddler"]}
	]`
	if err := ValidateJSON([]byte(badAge)); err == nil {
		t.Fatal("unknown age variant should have been rejected")
	}

	missingKey := `[{"domains": ["Memory"]}]`
	if err := ValidateJSON([]byte(missingKey)); err == nil {
		t.Fatal("entry without pheno/dataSource/section should have been rejected")
	}
}

func TestLoadFile(t *testing.T) {
	content := `[
	  {"domains": ["Memory"], "pheno": "memory", "dataSource": "neurocog", "section": 6},
	  {"domains": ["ADHD"], "pheno": "adhd", "dataSource": "neurobehav", "section": 10,
	   "multiRater": true, "ageVariants": ["adult", "child"],
	   "ratersByAge": {"child": ["self", "parent"]}}
	]`
	tmpfile, err := os.CreateTemp("", "registry*.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	if _, err := tmpfile.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	entries, err := LoadFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	r, err := NewResolver(entries)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	resolved, err := r.Resolve("ADHD", AgeChild)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !reflect.DeepEqual(resolved.EffectiveRaters, []string{"self", "parent"}) {
		t.Errorf("raters = %v, want [self parent]", resolved.EffectiveRaters)
	}

	if _, err := LoadFile("nonexistent.json"); err == nil {
		t.Fatal("LoadFile with missing file should have failed")
	}
}
