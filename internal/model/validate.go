package model

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

// rootField is how gojsonschema names the document root.
const rootField = "(root)"

var (
	compileOnce sync.Once
	compiled    map[Section]*gojsonschema.Schema
	compileErr  error
)

// Violation is a single failed schema rule.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (v Violation) String() string { return v.Field + ": " + v.Message }

// ValidationError enumerates every rule a section document violated.
type ValidationError struct {
	Section    Section
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.String())
	}
	return fmt.Sprintf("schema validation failed for %s: %s", e.Section, strings.Join(msgs, "; "))
}

// Fields returns the offending field paths in report order.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.Field)
	}
	return out
}

func schemas() (map[Section]*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		m := make(map[Section]*gojsonschema.Schema, len(Sections))
		for _, s := range Sections {
			b, err := schemaFS.ReadFile("schema/" + string(s) + ".schema.json")
			if err != nil {
				compileErr = fmt.Errorf("reading %s schema: %w", s, err)
				return
			}
			sc, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
			if err != nil {
				compileErr = fmt.Errorf("compiling %s schema: %w", s, err)
				return
			}
			m[s] = sc
		}
		compiled = m
	})
	return compiled, compileErr
}

// ValidateValue validates an already-parsed JSON value (maps, slices and
// scalars as produced by encoding/json) against the section schema.
func ValidateValue(section Section, v interface{}) error {
	all, err := schemas()
	if err != nil {
		return err
	}
	sc, ok := all[section]
	if !ok {
		return fmt.Errorf("unknown section %q", section)
	}
	res, err := sc.Validate(gojsonschema.NewGoLoader(v))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	verr := &ValidationError{Section: section}
	for _, e := range res.Errors() {
		verr.Violations = append(verr.Violations, Violation{
			Field:   violationField(e),
			Rule:    e.Type(),
			Message: e.Description(),
		})
	}
	return verr
}

// violationField resolves the field path of a result error; required-property
// errors are reported against the missing property rather than its parent.
func violationField(e gojsonschema.ResultError) string {
	field := e.Field()
	if e.Type() != "required" {
		return field
	}
	prop, ok := e.Details()["property"].(string)
	if !ok || prop == "" {
		return field
	}
	if field == "" || field == rootField {
		return prop
	}
	return field + "." + prop
}

// Decode parses raw section JSON, validates it and only then unmarshals it into
// the typed record.
func Decode[T any](section Section, data []byte) (T, error) {
	var out T
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return out, fmt.Errorf("parsing %s: %w", section.FileName(), err)
	}
	if err := ValidateValue(section, raw); err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decoding %s: %w", section.FileName(), err)
	}
	return out, nil
}

// ValidateCV checks a composed CVData against the section schemas, prefixing
// each violation with the part it came from.
func ValidateCV(cv *CVData) error {
	parts := []struct {
		name    string
		section Section
		value   interface{}
	}{
		{"personal", SectionPersonal, cv.Personal},
		{"socials", SectionSocials, cv.Socials},
		{"experience", SectionExperience, nonNil(cv.Experience)},
		{"projects", SectionProjects, nonNil(cv.Projects)},
		{"skills", SectionSkills, skillsOrEmpty(cv.Skills)},
		{"education", SectionEducation, nonNil(cv.Education)},
		{"achievements", SectionAchievements, nonNil(cv.Achievements)},
	}

	agg := &ValidationError{Section: "cv"}
	if strings.TrimSpace(cv.Summary) == "" {
		agg.Violations = append(agg.Violations, Violation{Field: "summary", Rule: "minLength", Message: "summary is required"})
	}
	for _, p := range parts {
		raw, err := toUntyped(p.value)
		if err != nil {
			return err
		}
		err = ValidateValue(p.section, raw)
		if err == nil {
			continue
		}
		verr, ok := err.(*ValidationError)
		if !ok {
			return err
		}
		for _, v := range verr.Violations {
			v.Field = p.name + "." + v.Field
			agg.Violations = append(agg.Violations, v)
		}
	}
	if len(agg.Violations) == 0 {
		return nil
	}
	return agg
}

// toUntyped round-trips v through JSON so struct tags decide the shape the
// schema sees.
func toUntyped(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func skillsOrEmpty(s Skills) Skills {
	if s == nil {
		return Skills{}
	}
	return s
}
