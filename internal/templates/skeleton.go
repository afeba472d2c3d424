package templates

// skeleton is shared by every template. It owns section presence and item
// wrapping; a template only provides the named blocks in requiredBlocks.
// Every section carries data-section and every item data-item so the output
// can be inspected without knowing the template.
const skeleton = `{{define "document"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{template "style" .}}</style>
</head>
<body class="cv cv-{{.Template}}">
{{template "header" .}}
<main class="cv-body">
{{- range .Sections}}
<section class="section section-{{.Kind}}" data-section="{{.Kind}}">
{{template "section-title" .}}
{{- if eq .Kind "summary"}}
{{template "summary" .}}
{{- else if eq .Kind "experience"}}{{range .Experience}}
<div class="item" data-item="experience">{{template "experience-item" .}}</div>{{end}}
{{- else if eq .Kind "education"}}{{range .Education}}
<div class="item" data-item="education">{{template "education-item" .}}</div>{{end}}
{{- else if eq .Kind "skills"}}
<ul class="skills">{{range .Skills}}<li class="skill" data-item="skills">{{template "skill-item" .}}</li>{{end}}</ul>
{{- else if eq .Kind "projects"}}{{range .Projects}}
<div class="item" data-item="projects">{{template "project-item" .}}</div>{{end}}
{{- else if eq .Kind "certifications"}}{{range .Certifications}}
<div class="item" data-item="certifications">{{template "certification-item" .}}</div>{{end}}
{{- else if eq .Kind "languages"}}{{range .Languages}}
<div class="item" data-item="languages">{{template "language-item" .}}</div>{{end}}
{{- else if eq .Kind "references"}}{{range .References}}
<div class="item" data-item="references">{{template "reference-item" .}}</div>{{end}}
{{- else if eq .Kind "publications"}}{{range .Publications}}
<div class="item" data-item="publications">{{template "publication-item" .}}</div>{{end}}
{{- else if eq .Kind "custom"}}{{range .Custom}}
<div class="item" data-item="custom">{{template "custom-item" .}}</div>{{end}}
{{- end}}
</section>
{{- end}}
</main>
{{template "footer" .}}
</body>
</html>
{{end}}
{{define "contact"}}{{if .Href}}<a href="{{.Href}}">{{.Text}}</a>{{else}}{{.Text}}{{end}}{{end}}`

var requiredBlocks = []string{
	"style",
	"header",
	"section-title",
	"summary",
	"experience-item",
	"education-item",
	"skill-item",
	"project-item",
	"certification-item",
	"language-item",
	"reference-item",
	"publication-item",
	"custom-item",
	"footer",
}
