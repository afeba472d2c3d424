package templates

const creativeBlocks = `
{{define "style"}}
body { margin: 0; font-family: "Poppins", "Segoe UI", sans-serif; font-size: 10pt; line-height: 1.5; color: #2d2a32; }
.band { display: flex; align-items: center; gap: 20px; padding: 28px 40px; background: linear-gradient(135deg, #7c3aed, #db2777); color: #ffffff; }
.monogram { width: 64px; height: 64px; border-radius: 50%; background: rgba(255, 255, 255, 0.2); display: flex; align-items: center; justify-content: center; font-size: 22pt; font-weight: 700; }
.band .name { margin: 0; font-size: 24pt; }
.band .headline { margin: 2px 0 6px; opacity: 0.9; }
.contacts { margin: 0; padding: 0; list-style: none; display: flex; flex-wrap: wrap; gap: 4px 14px; font-size: 9pt; }
.contacts a { color: #ffffff; }
.cv-body { padding: 24px 40px; }
.section { margin-bottom: 18px; }
.section-title { margin: 0 0 10px; font-size: 13pt; color: #7c3aed; }
.section-title::after { content: ""; display: block; width: 40px; height: 3px; margin-top: 4px; background: #db2777; border-radius: 2px; }
.item { margin-bottom: 12px; padding-left: 12px; border-left: 2px solid #ede9fe; page-break-inside: avoid; }
.role { margin: 0; font-weight: 600; color: #4c1d95; }
.where { margin: 0; color: #6b7280; font-size: 9.5pt; }
.blurb { margin: 4px 0 0; white-space: pre-line; }
.tags { margin: 4px 0 0; padding: 0; list-style: none; display: flex; flex-wrap: wrap; gap: 4px; }
.tags li { background: #fdf2f8; color: #9d174d; border-radius: 10px; padding: 1px 8px; font-size: 8.5pt; }
.skills { margin: 0; padding: 0; list-style: none; display: flex; flex-wrap: wrap; gap: 6px; }
.skill { background: #7c3aed; color: #ffffff; border-radius: 12px; padding: 2px 10px; font-size: 9pt; }
.footer { padding: 0 40px 24px; font-size: 8pt; color: #a78bfa; }
{{end}}

{{define "header"}}<header class="band">
{{with initials .Personal.FullName}}<div class="monogram">{{.}}</div>{{end}}
<div>
<h1 class="name">{{.Personal.FullName}}</h1>
{{with .Personal.Title}}<p class="headline">{{.}}</p>{{end}}
{{with .Contacts}}<ul class="contacts">{{range .}}<li>{{template "contact" .}}</li>{{end}}</ul>{{end}}
</div>
</header>{{end}}

{{define "section-title"}}<h2 class="section-title">{{.Title}}</h2>{{end}}

{{define "summary"}}<p class="blurb">{{.Summary}}</p>{{end}}

{{define "experience-item"}}<p class="role">{{.Position}} @ {{.Company}}</p>
{{$d := dateRange .StartDate .EndDate .Current}}{{if or $d (opt .Location)}}<p class="where">{{$d}}{{if and $d (opt .Location)}}, {{end}}{{opt .Location}}</p>{{end}}
{{with opt .Description}}<p class="blurb">{{.}}</p>{{end}}{{end}}

{{define "education-item"}}<p class="role">{{.Degree}}{{with opt .Field}} · {{.}}{{end}}</p>
<p class="where">{{.Institution}}{{with dateRange .StartDate .EndDate false}}, {{.}}{{end}}</p>
{{with opt .GPA}}<p class="where">GPA {{.}}</p>{{end}}
{{with opt .Description}}<p class="blurb">{{.}}</p>{{end}}{{end}}

{{define "skill-item"}}{{.}}{{end}}

{{define "project-item"}}<p class="role">{{.Name}}</p>
{{$d := dateRange (opt .StartDate) .EndDate false}}{{if or $d (opt .URL)}}<p class="where">{{$d}}{{if and $d (opt .URL)}}, {{end}}{{with opt .URL}}<a href="{{href .}}">{{linkLabel .}}</a>{{end}}</p>{{end}}
{{with .Description}}<p class="blurb">{{.}}</p>{{end}}
{{with .Technologies}}<ul class="tags">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}{{end}}

{{define "certification-item"}}<p class="role">{{.Name}}</p>
<p class="where">{{.Issuer}}{{with .Date}}, {{.}}{{end}}</p>
{{with opt .URL}}<p class="where"><a href="{{href .}}">{{linkLabel .}}</a></p>{{end}}{{end}}

{{define "language-item"}}<p class="role">{{.Name}}</p>{{with .Proficiency}}<p class="where">{{.}}</p>{{end}}{{end}}

{{define "reference-item"}}<p class="role">{{.Name}}</p>
{{if or (opt .Position) (opt .Company)}}<p class="where">{{opt .Position}}{{if and (opt .Position) (opt .Company)}} @ {{end}}{{opt .Company}}</p>{{end}}
{{with opt .Relationship}}<p class="where">{{.}}</p>{{end}}
{{with opt .Email}}<p class="where"><a href="mailto:{{.}}">{{.}}</a></p>{{end}}
{{with opt .Phone}}<p class="where">{{.}}</p>{{end}}{{end}}

{{define "publication-item"}}<p class="role">{{.Title}}</p>
<p class="where">{{.Publisher}}{{with .Date}}, {{.}}{{end}}</p>
{{with opt .Description}}<p class="blurb">{{.}}</p>{{end}}
{{with opt .URL}}<p class="where"><a href="{{href .}}">{{linkLabel .}}</a></p>{{end}}{{end}}

{{define "custom-item"}}<p class="role">{{.Title}}</p>
{{if or (opt .Subtitle) (opt .Date)}}<p class="where">{{opt .Subtitle}}{{if and (opt .Subtitle) (opt .Date)}}, {{end}}{{opt .Date}}</p>{{end}}
{{with opt .Description}}<p class="blurb">{{.}}</p>{{end}}{{end}}

{{define "footer"}}{{with .LastUpdated}}<footer class="footer">Last updated {{.}}</footer>{{end}}{{end}}
`
