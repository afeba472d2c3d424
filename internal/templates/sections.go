package templates

import (
	"strings"

	"cv-builder/internal/domain"
)

type Kind string

const (
	KindSummary        Kind = "summary"
	KindExperience     Kind = "experience"
	KindEducation      Kind = "education"
	KindSkills         Kind = "skills"
	KindProjects       Kind = "projects"
	KindCertifications Kind = "certifications"
	KindLanguages      Kind = "languages"
	KindReferences     Kind = "references"
	KindPublications   Kind = "publications"
	KindCustom         Kind = "custom"
)

// Section is one renderable block of a CV. Exactly one of the item slices
// (or Summary) is populated, matching Kind.
type Section struct {
	Kind           Kind
	Title          string
	Summary        string
	Experience     []domain.WorkExperience
	Education      []domain.Education
	Skills         []string
	Projects       []domain.Project
	Certifications []domain.Certification
	Languages      []domain.Language
	References     []domain.Reference
	Publications   []domain.Publication
	Custom         []domain.CustomSectionItem
}

// Len is the number of item blocks the section renders. Summary counts as one.
func (s Section) Len() int {
	switch s.Kind {
	case KindSummary:
		return 1
	case KindExperience:
		return len(s.Experience)
	case KindEducation:
		return len(s.Education)
	case KindSkills:
		return len(s.Skills)
	case KindProjects:
		return len(s.Projects)
	case KindCertifications:
		return len(s.Certifications)
	case KindLanguages:
		return len(s.Languages)
	case KindReferences:
		return len(s.References)
	case KindPublications:
		return len(s.Publications)
	case KindCustom:
		return len(s.Custom)
	}
	return 0
}

// Sections yields the non-empty sections of cv in canonical order: summary,
// experience, education, skills, projects, certifications, languages,
// references, publications, then each custom section in list order.
// Item order within a section is the input order.
func Sections(cv *domain.CV) []Section {
	cv = cv.Normalized()
	all := []Section{
		{Kind: KindSummary, Title: "Professional Summary", Summary: strings.TrimSpace(cv.PersonalInfo.Summary)},
		{Kind: KindExperience, Title: "Work Experience", Experience: cv.Experience},
		{Kind: KindEducation, Title: "Education", Education: cv.Education},
		{Kind: KindSkills, Title: "Skills", Skills: cv.Skills},
		{Kind: KindProjects, Title: "Projects", Projects: cv.Projects},
		{Kind: KindCertifications, Title: "Certifications", Certifications: cv.Certifications},
		{Kind: KindLanguages, Title: "Languages", Languages: cv.Languages},
		{Kind: KindReferences, Title: "References", References: cv.References},
		{Kind: KindPublications, Title: "Publications", Publications: cv.Publications},
	}
	for _, cs := range cv.CustomSections {
		all = append(all, Section{Kind: KindCustom, Title: cs.Title, Custom: cs.Items})
	}

	out := make([]Section, 0, len(all))
	for _, s := range all {
		if s.Kind == KindSummary && s.Summary == "" {
			continue
		}
		if s.Len() == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Contact is one entry of the header contact line.
type Contact struct {
	Kind string
	Text string
	Href string
}

func contacts(p domain.PersonalInfo) []Contact {
	var out []Contact
	if v := strings.TrimSpace(p.Email); v != "" {
		out = append(out, Contact{Kind: "email", Text: v, Href: "mailto:" + v})
	}
	if v := strings.TrimSpace(p.Phone); v != "" {
		out = append(out, Contact{Kind: "phone", Text: v})
	}
	if v := strings.TrimSpace(p.Location); v != "" {
		out = append(out, Contact{Kind: "location", Text: v})
	}
	if v := strings.TrimSpace(domain.Str(p.Website)); v != "" {
		out = append(out, Contact{Kind: "website", Text: linkLabel(v), Href: href(v)})
	}
	if v := strings.TrimSpace(domain.Str(p.LinkedIn)); v != "" {
		out = append(out, Contact{Kind: "linkedin", Text: linkLabel(v), Href: href(v)})
	}
	return out
}

// View is the data every template executes against.
type View struct {
	Template    ID
	Title       string
	Personal    domain.PersonalInfo
	Contacts    []Contact
	Sections    []Section
	TailoredFor string
	LastUpdated string
}

func newView(cv *domain.CV, id ID) View {
	title := strings.TrimSpace(cv.Title)
	if title == "" {
		title = strings.TrimSpace(cv.PersonalInfo.FullName)
	}
	v := View{
		Template: id,
		Title:    title,
		Personal: cv.PersonalInfo,
		Contacts: contacts(cv.PersonalInfo),
		Sections: Sections(cv),
	}
	if cv.IsTailored {
		v.TailoredFor = strings.TrimSpace(domain.Str(cv.TailoredFor))
	}
	if !cv.LastUpdated.IsZero() {
		v.LastUpdated = cv.LastUpdated.UTC().Format("January 2, 2006")
	}
	return v
}
