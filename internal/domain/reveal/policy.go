package reveal

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/google/cel-go/cel"
	"gopkg.in/yaml.v3"

	"petid/internal/ports/entitlements"
)

// Section es un bloque de la respuesta que la presentación puede mostrar u ocultar.
type Section string

const (
	SectionDiet            Section = "diet"
	SectionVaccines        Section = "vaccines"
	SectionCare            Section = "care"
	SectionBreedInsights   Section = "breed_insights"
	SectionPremiumFeatures Section = "premium_features"
)

// Sections en el orden en que se reportan.
var Sections = []Section{
	SectionDiet,
	SectionVaccines,
	SectionCare,
	SectionBreedInsights,
	SectionPremiumFeatures,
}

var ErrUnknownSection = errors.New("unknown section")

// DefaultRules: lo calculado por el motor siempre se muestra;
// el contenido por raza y los recursos premium requieren plan premium.
func DefaultRules() map[Section]string {
	return map[Section]string{
		SectionDiet:            `true`,
		SectionVaccines:        `true`,
		SectionCare:            `true`,
		SectionBreedInsights:   `plan == "premium"`,
		SectionPremiumFeatures: `plan == "premium"`,
	}
}

// Subject son los datos contra los que se evalúan las reglas.
type Subject struct {
	Plan          entitlements.Plan
	Authenticated bool
}

// Decision indica, por sección, si se muestra.
type Decision map[Section]bool

func (d Decision) Reveals(s Section) bool { return d[s] }

// Locked lista las secciones ocultas, en orden estable.
func (d Decision) Locked() []Section {
	out := make([]Section, 0)
	for _, s := range Sections {
		if !d[s] {
			out = append(out, s)
		}
	}
	return out
}

// Policy compila una expresión CEL por sección al construirse; Decide solo evalúa.
// Los programas compilados son inmutables, así que Decide es seguro en concurrencia.
type Policy struct {
	programs map[Section]cel.Program
}

// NewPolicy parte de DefaultRules y aplica overrides.
func NewPolicy(overrides map[Section]string) (*Policy, error) {
	env, err := cel.NewEnv(
		cel.Variable("plan", cel.StringType),
		cel.Variable("authenticated", cel.BoolType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	rules := DefaultRules()
	for s, expr := range overrides {
		if !known(s) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSection, s)
		}
		rules[s] = expr
	}

	p := &Policy{programs: make(map[Section]cel.Program, len(rules))}
	for s, expr := range rules {
		ast, issues := env.Compile(expr)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("section %s: compile error: %w", s, issues.Err())
		}
		if !reflect.DeepEqual(ast.OutputType(), cel.BoolType) {
			return nil, fmt.Errorf("section %s: rule must evaluate to bool, got %v", s, ast.OutputType())
		}
		prog, err := env.Program(ast, cel.CostLimit(10000))
		if err != nil {
			return nil, fmt.Errorf("section %s: program creation error: %w", s, err)
		}
		p.programs[s] = prog
	}
	return p, nil
}

// Decide evalúa todas las reglas. Una regla que falla oculta su sección
// y el error se devuelve para que el llamador lo registre.
func (p *Policy) Decide(sub Subject) (Decision, error) {
	plan := sub.Plan
	if plan == "" {
		plan = entitlements.PlanFree
	}
	vars := map[string]any{
		"plan":          string(plan),
		"authenticated": sub.Authenticated,
	}

	d := make(Decision, len(Sections))
	var errs []error
	for _, s := range Sections {
		prog, ok := p.programs[s]
		if !ok {
			continue
		}
		out, _, err := prog.Eval(vars)
		if err != nil {
			errs = append(errs, fmt.Errorf("section %s: %w", s, err))
			d[s] = false
			continue
		}
		b, ok := out.Value().(bool)
		d[s] = ok && b
	}
	return d, errors.Join(errs...)
}

type rulesFile struct {
	Rules map[string]string `yaml:"rules"`
}

// LoadRules lee overrides en YAML:
//
//	rules:
//	  breed_insights: 'authenticated && plan == "premium"'
func LoadRules(r io.Reader) (map[Section]string, error) {
	var f rulesFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return map[Section]string{}, nil
		}
		return nil, fmt.Errorf("invalid reveal rules yaml: %w", err)
	}
	out := make(map[Section]string, len(f.Rules))
	for k, v := range f.Rules {
		s := Section(strings.TrimSpace(k))
		if !known(s) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSection, k)
		}
		out[s] = strings.TrimSpace(v)
	}
	return out, nil
}

func known(s Section) bool {
	for _, k := range Sections {
		if k == s {
			return true
		}
	}
	return false
}
