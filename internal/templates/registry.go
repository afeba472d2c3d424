package templates

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cv-builder/internal/domain"
	"cv-builder/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type ID string

const (
	Modern     ID = "modern"
	Classic    ID = "classic"
	Minimalist ID = "minimalist"
	Creative   ID = "creative"
	Executive  ID = "executive"

	DefaultID = Modern
)

// IDs is the fixed template enumeration in display order.
var IDs = []ID{Modern, Classic, Minimalist, Creative, Executive}

// State records where the registry's templates came from.
type State int

const (
	Uninitialized State = iota
	LoadedFromSource
	LoadedWithFallback
)

func (s State) String() string {
	switch s {
	case LoadedFromSource:
		return "loaded-from-source"
	case LoadedWithFallback:
		return "loaded-with-fallback"
	}
	return "uninitialized"
}

const (
	SourceFile    = "file"
	SourceBuiltin = "builtin"
)

var ErrNilCV = errors.New("cv is nil")

type Info struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
	Source      string `json:"source"`
}

type Template struct {
	info Info
	tpl  *template.Template
}

func (t *Template) Info() Info { return t.info }

func (t *Template) Execute(w io.Writer, v View) error {
	return t.tpl.ExecuteTemplate(w, "document", v)
}

// Registry holds one parsed template per ID. It is immutable once built and
// safe for concurrent use.
type Registry struct {
	state     State
	templates map[ID]*Template
}

// Builtin returns a registry made only of the compiled-in templates.
func Builtin() *Registry {
	return Load("", logger.NewNop())
}

// Load builds the registry. For each ID, <dir>/<id>.html is used when it
// parses, defines every required block and renders a fully populated CV; otherwise
// the built-in template for that ID is used. Load never fails.
func Load(dir string, log logger.Logger) *Registry {
	r := &Registry{templates: make(map[ID]*Template, len(IDs))}
	names := readManifest(dir, log)

	fromFile := 0
	for _, id := range IDs {
		info := builtinInfo[id]
		info.Default = id == DefaultID
		if m, ok := names[id]; ok {
			if m.Name != "" {
				info.Name = m.Name
			}
			if m.Description != "" {
				info.Description = m.Description
			}
		}

		var tpl *template.Template
		if dir != "" {
			t, err := parseFile(filepath.Join(dir, string(id)+".html"), id)
			switch {
			case err == nil:
				tpl = t
			case errors.Is(err, fs.ErrNotExist):
				log.Info("template file not found, using built-in", zap.String("template", string(id)))
			default:
				log.Warn("template file rejected, using built-in", zap.String("template", string(id)), zap.Error(err))
			}
		}

		if tpl != nil {
			info.Source = SourceFile
			fromFile++
		} else {
			tpl = parseBuiltin(id)
			info.Source = SourceBuiltin
		}
		r.templates[id] = &Template{info: info, tpl: tpl}
	}

	r.state = LoadedWithFallback
	if fromFile == len(IDs) {
		r.state = LoadedFromSource
	}
	log.Info("templates loaded", zap.String("state", r.state.String()), zap.Int("from_file", fromFile))
	return r
}

func (r *Registry) State() State {
	if r == nil {
		return Uninitialized
	}
	return r.state
}

// ResolveID maps a requested template name onto the enumeration. Matching
// is case-insensitive; unknown or empty names resolve to DefaultID.
func (r *Registry) ResolveID(name string) ID {
	id := ID(strings.ToLower(strings.TrimSpace(name)))
	if r != nil {
		if _, ok := r.templates[id]; ok {
			return id
		}
	}
	return DefaultID
}

func (r *Registry) Resolve(name string) *Template {
	return r.templates[r.ResolveID(name)]
}

func (r *Registry) Default() *Template {
	return r.templates[DefaultID]
}

func (r *Registry) List() []Info {
	out := make([]Info, 0, len(IDs))
	for _, id := range IDs {
		if t, ok := r.templates[id]; ok {
			out = append(out, t.info)
		}
	}
	return out
}

// Render produces the HTML document for cv using the named template. An
// unknown name renders with the default template.
func (r *Registry) Render(cv *domain.CV, name string) (string, error) {
	if r.State() == Uninitialized {
		return "", errors.New("template registry is not initialized")
	}
	if cv == nil {
		return "", ErrNilCV
	}
	t := r.Resolve(name)
	var buf bytes.Buffer
	if err := t.Execute(&buf, newView(cv, t.info.ID)); err != nil {
		return "", fmt.Errorf("render template %s: %w", t.info.ID, err)
	}
	return buf.String(), nil
}

func parseBuiltin(id ID) *template.Template {
	return template.Must(template.Must(
		template.New(string(id)).Funcs(funcMap()).Parse(builtinBlocks[id])).Parse(skeleton))
}

func parseFile(path string, id ID) (*template.Template, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// The skeleton is parsed last so a file cannot replace "document".
	t, err := template.New(string(id)).Funcs(funcMap()).Parse(string(src))
	if err != nil {
		return nil, err
	}
	if t, err = t.Parse(skeleton); err != nil {
		return nil, err
	}
	for _, name := range requiredBlocks {
		if t.Lookup(name) == nil {
			return nil, fmt.Errorf("missing block %q", name)
		}
	}
	if err := t.ExecuteTemplate(io.Discard, "document", newView(fullCV(), id)); err != nil {
		return nil, fmt.Errorf("trial render: %w", err)
	}
	return t, nil
}

type manifestEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// readManifest reads optional display metadata from <dir>/manifest.yaml.
func readManifest(dir string, log logger.Logger) map[ID]manifestEntry {
	if dir == "" {
		return nil
	}
	b, err := os.ReadFile(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil
	}
	var m struct {
		Templates map[string]manifestEntry `yaml:"templates"`
	}
	if err := yaml.Unmarshal(b, &m); err != nil {
		log.Warn("template manifest ignored", zap.Error(err))
		return nil
	}
	out := make(map[ID]manifestEntry, len(m.Templates))
	for k, v := range m.Templates {
		out[ID(strings.ToLower(k))] = v
	}
	return out
}

// fullCV exercises every section so a file template is executed end to
// end before it is accepted.
func fullCV() *domain.CV {
	s := func(v string) *string { return &v }
	return &domain.CV{
		Title: "Trial",
		PersonalInfo: domain.PersonalInfo{
			FullName: "Trial Person", Title: "Engineer", Email: "trial@example.com",
			Phone: "1", Location: "Earth", Summary: "Summary", Website: s("example.com"),
		},
		IsTailored:     true,
		TailoredFor:    s("Job"),
		LastUpdated:    domain.NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Experience:     []domain.WorkExperience{{ID: "e", Company: "C", Position: "P", StartDate: "2020", EndDate: s("2021"), Location: s("L"), Description: s("D")}},
		Education:      []domain.Education{{ID: "d", Institution: "I", Degree: "B", Field: s("F"), StartDate: "2016", GPA: s("4"), Description: s("D")}},
		Skills:         []string{"Go"},
		Projects:       []domain.Project{{ID: "p", Name: "N", Description: "D", Technologies: []string{"Go"}, URL: s("example.com"), StartDate: s("2020")}},
		Certifications: []domain.Certification{{ID: "c", Name: "N", Issuer: "I", Date: "2020", URL: s("example.com")}},
		Languages:      []domain.Language{{ID: "l", Name: "English", Proficiency: "Native"}},
		References:     []domain.Reference{{ID: "r", Name: "R", Position: s("P"), Company: s("C"), Email: s("r@example.com"), Phone: s("1"), Relationship: s("Manager")}},
		Publications:   []domain.Publication{{ID: "u", Title: "T", Publisher: "P", Date: "2020", URL: s("example.com"), Description: s("D")}},
		CustomSections: []domain.CustomSection{{ID: "x", Title: "Awards", Items: []domain.CustomSectionItem{{ID: "i", Title: "T", Subtitle: s("S"), Date: s("2020"), Description: s("D")}}}},
	}
}
