package domain

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// CV is the structured resume document that is stored and exported.
// Optional scalar fields are pointers: nil means "not provided", which is
// distinct from an explicitly empty string.
type CV struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    *string          `json:"description,omitempty"`
	LastUpdated    Timestamp        `json:"lastUpdated"`
	TailoredFor    *string          `json:"tailoredFor,omitempty"`
	IsTailored     bool             `json:"isTailored"`
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Experience     []WorkExperience `json:"experience"`
	Education      []Education      `json:"education"`
	Skills         []string         `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Languages      []Language       `json:"languages"`
	References     []Reference      `json:"references"`
	Publications   []Publication    `json:"publications"`
	CustomSections []CustomSection  `json:"customSections"`
}

type PersonalInfo struct {
	FullName string  `json:"fullName"`
	Title    string  `json:"title"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Location string  `json:"location"`
	Summary  string  `json:"summary"`
	Website  *string `json:"website,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
}

type WorkExperience struct {
	ID          string  `json:"id"`
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Location    *string `json:"location,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     bool    `json:"current"`
	Description *string `json:"description,omitempty"`
}

type Education struct {
	ID          string  `json:"id"`
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Field       *string `json:"field,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	GPA         *string `json:"gpa,omitempty"`
	Description *string `json:"description,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	URL          *string  `json:"url,omitempty"`
	StartDate    *string  `json:"startDate,omitempty"`
	EndDate      *string  `json:"endDate,omitempty"`
}

type Certification struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Issuer string  `json:"issuer"`
	Date   string  `json:"date"`
	URL    *string `json:"url,omitempty"`
}

type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type Reference struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Position     *string `json:"position,omitempty"`
	Company      *string `json:"company,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
}

type Publication struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Publisher   string  `json:"publisher"`
	Date        string  `json:"date"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CustomSection struct {
	ID    string              `json:"id"`
	Title string              `json:"title"`
	Items []CustomSectionItem `json:"items"`
}

type CustomSectionItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Normalized returns a copy of the CV in which every list-valued section is
// non-nil and skills are de-duplicated (first occurrence wins). The receiver
// is not modified.
func (cv *CV) Normalized() *CV {
	out := *cv
	out.Experience = nonNil(cv.Experience)
	out.Education = nonNil(cv.Education)
	out.Projects = nonNil(cv.Projects)
	out.Certifications = nonNil(cv.Certifications)
	out.Languages = nonNil(cv.Languages)
	out.References = nonNil(cv.References)
	out.Publications = nonNil(cv.Publications)
	out.CustomSections = make([]CustomSection, 0, len(cv.CustomSections))
	for _, s := range cv.CustomSections {
		s.Items = nonNil(s.Items)
		out.CustomSections = append(out.CustomSections, s)
	}

	out.Skills = make([]string, 0, len(cv.Skills))
	seen := make(map[string]struct{}, len(cv.Skills))
	for _, s := range cv.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out.Skills = append(out.Skills, s)
	}
	return &out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Str dereferences an optional string, yielding "" for nil.
func Str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// CVRepository persists CV documents. Every operation is scoped to the owning
// user; documents belonging to other owners behave as if they did not exist.
type CVRepository interface {
	Create(ctx context.Context, ownerID uuid.UUID, cv *CV) error
	Get(ctx context.Context, ownerID uuid.UUID, id string) (*CV, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*CV, error)
	Update(ctx context.Context, ownerID uuid.UUID, cv *CV) error
	Delete(ctx context.Context, ownerID uuid.UUID, id string) error
}
