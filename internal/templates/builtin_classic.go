package templates

const classicBlocks = `
{{define "style"}}
body { margin: 0; padding: 40px 56px; font-family: Georgia, "Times New Roman", serif; font-size: 11pt; line-height: 1.5; color: #222222; }
.header { text-align: center; margin-bottom: 20px; }
.header .name { margin: 0; font-size: 24pt; font-weight: normal; letter-spacing: 0.08em; text-transform: uppercase; }
.header .headline { margin: 4px 0; font-style: italic; font-size: 12pt; }
.contacts { margin: 6px 0 0; font-size: 10pt; }
.contacts span + span::before { content: " | "; color: #888888; }
.contacts a { color: #222222; }
.section { margin-bottom: 18px; }
.section-title { margin: 0 0 10px; font-size: 11.5pt; font-weight: bold; text-transform: uppercase; letter-spacing: 0.12em; border-bottom: 1px solid #222222; padding-bottom: 3px; }
.item { margin-bottom: 10px; page-break-inside: avoid; }
.line { display: flex; justify-content: space-between; }
.line strong { font-size: 11pt; }
.when { font-style: italic; }
.sub { margin: 0; font-style: italic; }
.text { margin: 4px 0 0; white-space: pre-line; text-align: justify; }
.skills { margin: 0; padding-left: 18px; columns: 3; }
.footer { margin-top: 24px; font-size: 8.5pt; text-align: center; color: #777777; }
{{end}}

{{define "header"}}<header class="header">
<h1 class="name">{{.Personal.FullName}}</h1>
{{with .Personal.Title}}<p class="headline">{{.}}</p>{{end}}
{{with .Contacts}}<p class="contacts">{{range .}}<span>{{template "contact" .}}</span>{{end}}</p>{{end}}
</header>{{end}}

{{define "section-title"}}<h2 class="section-title">{{.Title}}</h2>{{end}}

{{define "summary"}}<p class="text">{{.Summary}}</p>{{end}}

{{define "experience-item"}}<div class="line"><strong>{{.Company}}</strong>{{with opt .Location}}<span>{{.}}</span>{{end}}</div>
<div class="line"><p class="sub">{{.Position}}</p>{{with dateRange .StartDate .EndDate .Current}}<span class="when">{{.}}</span>{{end}}</div>
{{with opt .Description}}<p class="text">{{.}}</p>{{end}}{{end}}

{{define "education-item"}}<div class="line"><strong>{{.Institution}}</strong>{{with dateRange .StartDate .EndDate false}}<span class="when">{{.}}</span>{{end}}</div>
<p class="sub">{{.Degree}}{{with opt .Field}}, {{.}}{{end}}{{with opt .GPA}} (GPA {{.}}){{end}}</p>
{{with opt .Description}}<p class="text">{{.}}</p>{{end}}{{end}}

{{define "skill-item"}}{{.}}{{end}}

{{define "project-item"}}<div class="line"><strong>{{.Name}}</strong>{{with dateRange (opt .StartDate) .EndDate false}}<span class="when">{{.}}</span>{{end}}</div>
{{with .Technologies}}<p class="sub">{{join . ", "}}</p>{{end}}
{{with .Description}}<p class="text">{{.}}</p>{{end}}
{{with opt .URL}}<p class="sub"><a href="{{href .}}">{{linkLabel .}}</a></p>{{end}}{{end}}

{{define "certification-item"}}<div class="line"><strong>{{.Name}}</strong>{{with .Date}}<span class="when">{{.}}</span>{{end}}</div>
{{with .Issuer}}<p class="sub">{{.}}</p>{{end}}
{{with opt .URL}}<p class="sub"><a href="{{href .}}">{{linkLabel .}}</a></p>{{end}}{{end}}

{{define "language-item"}}<div class="line"><strong>{{.Name}}</strong>{{with .Proficiency}}<span class="when">{{.}}</span>{{end}}</div>{{end}}

{{define "reference-item"}}<strong>{{.Name}}</strong>
{{if or (opt .Position) (opt .Company)}}<p class="sub">{{opt .Position}}{{if and (opt .Position) (opt .Company)}}, {{end}}{{opt .Company}}</p>{{end}}
{{with opt .Relationship}}<p class="sub">{{.}}</p>{{end}}
{{with opt .Email}}<p class="sub">{{.}}</p>{{end}}
{{with opt .Phone}}<p class="sub">{{.}}</p>{{end}}{{end}}

{{define "publication-item"}}<div class="line"><strong>{{.Title}}</strong>{{with .Date}}<span class="when">{{.}}</span>{{end}}</div>
{{with .Publisher}}<p class="sub">{{.}}</p>{{end}}
{{with opt .Description}}<p class="text">{{.}}</p>{{end}}
{{with opt .URL}}<p class="sub"><a href="{{href .}}">{{linkLabel .}}</a></p>{{end}}{{end}}

{{define "custom-item"}}<div class="line"><strong>{{.Title}}</strong>{{with opt .Date}}<span class="when">{{.}}</span>{{end}}</div>
{{with opt .Subtitle}}<p class="sub">{{.}}</p>{{end}}
{{with opt .Description}}<p class="text">{{.}}</p>{{end}}{{end}}

{{define "footer"}}{{with .LastUpdated}}<footer class="footer">Updated {{.}}</footer>{{end}}{{end}}
`
