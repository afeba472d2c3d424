package templates

const executiveBlocks = `
{{define "style"}}
body { margin: 0; font-family: "Garamond", "Georgia", serif; font-size: 10.5pt; line-height: 1.5; color: #1c2333; }
.masthead { background: #0f1e3d; color: #f8f5ec; padding: 30px 48px 22px; border-bottom: 4px solid #c9a227; }
.masthead .name { margin: 0; font-size: 25pt; letter-spacing: 0.04em; }
.masthead .headline { margin: 4px 0 0; color: #c9a227; font-size: 12pt; text-transform: uppercase; letter-spacing: 0.1em; }
.masthead .target { margin: 6px 0 0; font-size: 9pt; color: #d6d0bf; }
.contacts { margin: 10px 0 0; padding: 0; list-style: none; display: flex; flex-wrap: wrap; gap: 4px 18px; font-size: 9pt; }
.contacts a { color: #f8f5ec; }
.cv-body { padding: 24px 48px; }
.section { margin-bottom: 18px; }
.section-title { margin: 0 0 10px; font-size: 11.5pt; text-transform: uppercase; letter-spacing: 0.14em; color: #0f1e3d; border-left: 4px solid #c9a227; padding-left: 8px; }
.item { margin-bottom: 12px; page-break-inside: avoid; }
.row { display: flex; justify-content: space-between; align-items: baseline; }
.row h3 { margin: 0; font-size: 11pt; color: #0f1e3d; }
.period { font-size: 9pt; color: #7a6a3a; }
.firm { margin: 1px 0; font-weight: bold; color: #44506b; }
.note { margin: 1px 0; font-size: 9.5pt; color: #5c667d; }
.prose { margin: 4px 0 0; white-space: pre-line; }
.skills { margin: 0; padding: 0; list-style: none; columns: 2; }
.skill::before { content: "\25C6  "; color: #c9a227; }
.footer { padding: 0 48px 24px; font-size: 8pt; color: #8a8f9c; }
{{end}}

{{define "header"}}<header class="masthead">
<h1 class="name">{{.Personal.FullName}}</h1>
{{with .Personal.Title}}<p class="headline">{{.}}</p>{{end}}
{{with .TailoredFor}}<p class="target">Prepared for {{.}}</p>{{end}}
{{with .Contacts}}<ul class="contacts">{{range .}}<li>{{template "contact" .}}</li>{{end}}</ul>{{end}}
</header>{{end}}

{{define "section-title"}}<h2 class="section-title">{{.Title}}</h2>{{end}}

{{define "summary"}}<p class="prose">{{.Summary}}</p>{{end}}

{{define "experience-item"}}<div class="row"><h3>{{.Position}}</h3>{{with dateRange .StartDate .EndDate .Current}}<span class="period">{{.}}</span>{{end}}</div>
<p class="firm">{{.Company}}</p>
{{with opt .Location}}<p class="note">{{.}}</p>{{end}}
{{with opt .Description}}<p class="prose">{{.}}</p>{{end}}{{end}}

{{define "education-item"}}<div class="row"><h3>{{.Institution}}</h3>{{with dateRange .StartDate .EndDate false}}<span class="period">{{.}}</span>{{end}}</div>
<p class="firm">{{.Degree}}{{with opt .Field}}, {{.}}{{end}}</p>
{{with opt .GPA}}<p class="note">GPA {{.}}</p>{{end}}
{{with opt .Description}}<p class="prose">{{.}}</p>{{end}}{{end}}

{{define "skill-item"}}{{.}}{{end}}

{{define "project-item"}}<div class="row"><h3>{{.Name}}</h3>{{with dateRange (opt .StartDate) .EndDate false}}<span class="period">{{.}}</span>{{end}}</div>
{{with .Technologies}}<p class="note">{{join . ", "}}</p>{{end}}
{{with .Description}}<p class="prose">{{.}}</p>{{end}}
{{with opt .URL}}<p class="note"><a href="{{href .}}">{{linkLabel .}}</a></p>{{end}}{{end}}

{{define "certification-item"}}<div class="row"><h3>{{.Name}}</h3>{{with .Date}}<span class="period">{{.}}</span>{{end}}</div>
{{with .Issuer}}<p class="firm">{{.}}</p>{{end}}
{{with opt .URL}}<p class="note"><a href="{{href .}}">{{linkLabel .}}</a></p>{{end}}{{end}}

{{define "language-item"}}<div class="row"><h3>{{.Name}}</h3>{{with .Proficiency}}<span class="period">{{.}}</span>{{end}}</div>{{end}}

{{define "reference-item"}}<div class="row"><h3>{{.Name}}</h3>{{with opt .Relationship}}<span class="period">{{.}}</span>{{end}}</div>
{{if or (opt .Position) (opt .Company)}}<p class="firm">{{opt .Position}}{{if and (opt .Position) (opt .Company)}}, {{end}}{{opt .Company}}</p>{{end}}
{{with opt .Email}}<p class="note">{{.}}</p>{{end}}
{{with opt .Phone}}<p class="note">{{.}}</p>{{end}}{{end}}

{{define "publication-item"}}<div class="row"><h3>{{.Title}}</h3>{{with .Date}}<span class="period">{{.}}</span>{{end}}</div>
{{with .Publisher}}<p class="firm">{{.}}</p>{{end}}
{{with opt .Description}}<p class="prose">{{.}}</p>{{end}}
{{with opt .URL}}<p class="note"><a href="{{href .}}">{{linkLabel .}}</a></p>{{end}}{{end}}

{{define "custom-item"}}<div class="row"><h3>{{.Title}}</h3>{{with opt .Date}}<span class="period">{{.}}</span>{{end}}</div>
{{with opt .Subtitle}}<p class="firm">{{.}}</p>{{end}}
{{with opt .Description}}<p class="prose">{{.}}</p>{{end}}{{end}}

{{define "footer"}}{{with .LastUpdated}}<footer class="footer">Last updated {{.}}</footer>{{end}}{{end}}
`
