package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPersonal = `{
  "name": "Jane Doe",
  "title": "Staff Engineer",
  "tagline": "Builds reliable systems",
  "bio": "Engineer with a taste for boring technology.",
  "location": {"city": "Lisbon", "country": "Portugal"},
  "contact": {"email": "jane@example.com", "phone": "+351 000 000"}
}`

func TestDecode_PersonalValid(t *testing.T) {
	p, err := Decode[PersonalInfo](SectionPersonal, []byte(validPersonal))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "Lisbon", p.Location.City)
	assert.Empty(t, p.Location.State)
	assert.Equal(t, "jane@example.com", p.Contact.Email)
}

func TestDecode_PersonalEnumeratesEveryViolation(t *testing.T) {
	doc := `{
	  "name": "",
	  "title": "Staff Engineer",
	  "bio": "x",
	  "location": {"city": "Lisbon", "country": "Portugal"},
	  "contact": {"email": "not-an-email", "phone": "1"}
	}`
	_, err := Decode[PersonalInfo](SectionPersonal, []byte(doc))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, SectionPersonal, verr.Section)

	fields := strings.Join(verr.Fields(), ",")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "tagline")
	assert.Contains(t, fields, "contact.email")
	assert.GreaterOrEqual(t, len(verr.Violations), 3)
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode[PersonalInfo](SectionPersonal, []byte(`{"name": `))
	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "personal.json")
}

func TestDecode_SocialsRejectsBadURL(t *testing.T) {
	_, err := Decode[SocialLinks](SectionSocials, []byte(`{"github": "https://github.com/jane", "linkedin": "linkedin"}`))
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"linkedin"}, verr.Fields())
}

func TestDecode_SocialsAllOptional(t *testing.T) {
	s, err := Decode[SocialLinks](SectionSocials, []byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, s.Map())
}

func TestDecode_ExperienceCollectionFailsAsWhole(t *testing.T) {
	doc := `[
	  {"id":"a","title":"Dev","company":"Acme","location":"Remote","startDate":"January 2020","endDate":null,"current":true,"description":"d","technologies":["Go"]},
	  {"id":"b","title":"Dev","company":"Beta","location":"Remote","startDate":"March 2018","endDate":"December 2019","current":false,"description":"d","technologies":[]}
	]`
	out, err := Decode[[]Experience](SectionExperience, []byte(doc))
	require.Error(t, err)
	assert.Nil(t, out)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"1.technologies"}, verr.Fields())
}

func TestDecode_ExperienceNullableEndDate(t *testing.T) {
	doc := `[{"id":"a","title":"Dev","company":"Acme","location":"Remote","startDate":"January 2020","endDate":null,"current":true,"description":"d","technologies":["Go"]}]`
	out, err := Decode[[]Experience](SectionExperience, []byte(doc))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].EndDate)
	assert.Equal(t, "January 2020 - Present", out[0].Period())
}

func TestDecode_ProjectURLMayBeEmpty(t *testing.T) {
	doc := `[{"id":"p","title":"T","duration":"2023","description":"D.","techStack":["Go"],"highlights":[],"featured":true,"tags":["ai"],"liveUrl":"","githubUrl":"https://github.com/x/y"}]`
	out, err := Decode[[]Project](SectionProjects, []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/x/y", out[0].GitHubURL)

	bad := strings.Replace(doc, `"liveUrl":""`, `"liveUrl":"nope"`, 1)
	_, err = Decode[[]Project](SectionProjects, []byte(bad))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, strings.Join(verr.Fields(), ","), "liveUrl")
}

func TestDecode_SkillsMap(t *testing.T) {
	s, err := Decode[Skills](SectionSkills, []byte(`{"Languages":["Go","Rust"],"Cloud":["AWS"]}`))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count())

	_, err = Decode[Skills](SectionSkills, []byte(`{"Languages":"Go"}`))
	require.Error(t, err)
}

func TestDecode_ContactEmail(t *testing.T) {
	c, err := Decode[Contact](SectionContact, []byte(`{"email":"jane@example.com","availability":"Open"}`))
	require.NoError(t, err)
	assert.Equal(t, "Open", c.Availability)

	_, err = Decode[Contact](SectionContact, []byte(`{"phone":"1"}`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"email"}, verr.Fields())
}

func TestValidateValue_UnknownSection(t *testing.T) {
	err := ValidateValue(Section("blog"), map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section")
}

func TestValidateCV(t *testing.T) {
	p, err := Decode[PersonalInfo](SectionPersonal, []byte(validPersonal))
	require.NoError(t, err)

	cv := &CVData{Personal: p, Summary: "Summary"}
	require.NoError(t, ValidateCV(cv))

	cv.Summary = " "
	cv.Personal.Contact.Email = "broken"
	cv.Projects = []Project{{ID: "p", Title: "T", Duration: "1y", Description: "D"}}
	err = ValidateCV(cv)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	fields := strings.Join(verr.Fields(), ",")
	assert.Contains(t, fields, "summary")
	assert.Contains(t, fields, "personal.contact.email")
	assert.Contains(t, fields, "projects.0.techStack")
}

func TestSection(t *testing.T) {
	assert.Equal(t, "experience.json", SectionExperience.FileName())
	s, ok := ParseSection("skills")
	assert.True(t, ok)
	assert.Equal(t, SectionSkills, s)
	_, ok = ParseSection("blog")
	assert.False(t, ok)
}
