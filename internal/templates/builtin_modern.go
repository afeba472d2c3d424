package templates

const modernBlocks = `
{{define "style"}}
* { box-sizing: border-box; }
body { margin: 0; padding: 36px 44px; font-family: "Helvetica Neue", Arial, sans-serif; font-size: 10.5pt; line-height: 1.45; color: #1f2937; background: #ffffff; }
.header { border-bottom: 3px solid #2563eb; padding-bottom: 14px; margin-bottom: 18px; }
.header .name { margin: 0; font-size: 26pt; font-weight: 700; color: #111827; }
.header .headline { margin: 4px 0 8px; font-size: 13pt; color: #2563eb; }
.contacts { list-style: none; margin: 0; padding: 0; display: flex; flex-wrap: wrap; gap: 4px 16px; font-size: 9.5pt; color: #4b5563; }
.contacts a { color: #2563eb; text-decoration: none; }
.section { margin-bottom: 16px; }
.section-title { margin: 0 0 8px; font-size: 12pt; text-transform: uppercase; letter-spacing: 0.06em; color: #2563eb; }
.item { margin-bottom: 10px; page-break-inside: avoid; }
.item-head { display: flex; justify-content: space-between; align-items: baseline; }
.item-head h3 { margin: 0; font-size: 11pt; }
.dates { font-size: 9pt; color: #6b7280; white-space: nowrap; }
.org { margin: 2px 0; color: #374151; font-weight: 600; }
.description { margin: 4px 0 0; white-space: pre-line; }
.meta { margin: 2px 0; font-size: 9.5pt; color: #6b7280; }
.skills { list-style: none; margin: 0; padding: 0; display: flex; flex-wrap: wrap; gap: 6px; }
.skill { background: #eff6ff; color: #1e40af; border-radius: 4px; padding: 2px 8px; font-size: 9.5pt; }
.footer { margin-top: 24px; font-size: 8pt; color: #9ca3af; text-align: right; }
{{end}}

{{define "header"}}<header class="header">
<h1 class="name">{{.Personal.FullName}}</h1>
{{with .Personal.Title}}<p class="headline">{{.}}</p>{{end}}
{{with .Contacts}}<ul class="contacts">{{range .}}<li class="contact-{{.Kind}}">{{template "contact" .}}</li>{{end}}</ul>{{end}}
</header>{{end}}

{{define "section-title"}}<h2 class="section-title">{{.Title}}</h2>{{end}}

{{define "summary"}}<p class="summary description">{{.Summary}}</p>{{end}}

{{define "experience-item"}}<div class="item-head"><h3>{{.Position}}</h3>{{with dateRange .StartDate .EndDate .Current}}<span class="dates">{{.}}</span>{{end}}</div>
<p class="org">{{.Company}}{{with opt .Location}} · {{.}}{{end}}</p>
{{with opt .Description}}<p class="description">{{.}}</p>{{end}}{{end}}

{{define "education-item"}}<div class="item-head"><h3>{{.Degree}}{{with opt .Field}} in {{.}}{{end}}</h3>{{with dateRange .StartDate .EndDate false}}<span class="dates">{{.}}</span>{{end}}</div>
<p class="org">{{.Institution}}</p>
{{with opt .GPA}}<p class="meta">GPA: {{.}}</p>{{end}}
{{with opt .Description}}<p class="description">{{.}}</p>{{end}}{{end}}

{{define "skill-item"}}{{.}}{{end}}

{{define "project-item"}}<div class="item-head"><h3>{{.Name}}</h3>{{with dateRange (opt .StartDate) .EndDate false}}<span class="dates">{{.}}</span>{{end}}</div>
{{with opt .URL}}<p class="meta"><a href="{{href .}}">{{linkLabel .}}</a></p>{{end}}
{{with .Description}}<p class="description">{{.}}</p>{{end}}
{{with .Technologies}}<p class="meta">{{join . ", "}}</p>{{end}}{{end}}

{{define "certification-item"}}<div class="item-head"><h3>{{.Name}}</h3>{{with .Date}}<span class="dates">{{.}}</span>{{end}}</div>
{{with .Issuer}}<p class="org">{{.}}</p>{{end}}
{{with opt .URL}}<p class="meta"><a href="{{href .}}">{{linkLabel .}}</a></p>{{end}}{{end}}

{{define "language-item"}}<div class="item-head"><h3>{{.Name}}</h3>{{with .Proficiency}}<span class="dates">{{.}}</span>{{end}}</div>{{end}}

{{define "reference-item"}}<h3>{{.Name}}</h3>
{{if or (opt .Position) (opt .Company)}}<p class="org">{{opt .Position}}{{if and (opt .Position) (opt .Company)}}, {{end}}{{opt .Company}}</p>{{end}}
{{with opt .Relationship}}<p class="meta">{{.}}</p>{{end}}
{{with opt .Email}}<p class="meta"><a href="mailto:{{.}}">{{.}}</a></p>{{end}}
{{with opt .Phone}}<p class="meta">{{.}}</p>{{end}}{{end}}

{{define "publication-item"}}<div class="item-head"><h3>{{.Title}}</h3>{{with .Date}}<span class="dates">{{.}}</span>{{end}}</div>
{{with .Publisher}}<p class="org">{{.}}</p>{{end}}
{{with opt .URL}}<p class="meta"><a href="{{href .}}">{{linkLabel .}}</a></p>{{end}}
{{with opt .Description}}<p class="description">{{.}}</p>{{end}}{{end}}

{{define "custom-item"}}<div class="item-head"><h3>{{.Title}}</h3>{{with opt .Date}}<span class="dates">{{.}}</span>{{end}}</div>
{{with opt .Subtitle}}<p class="org">{{.}}</p>{{end}}
{{with opt .Description}}<p class="description">{{.}}</p>{{end}}{{end}}

{{define "footer"}}{{with .LastUpdated}}<footer class="footer">Last updated {{.}}</footer>{{end}}{{end}}
`
