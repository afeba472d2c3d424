package templates

const minimalistBlocks = `
{{define "style"}}
body { margin: 0; padding: 48px 64px; font-family: "Inter", "Helvetica", sans-serif; font-weight: 300; font-size: 10pt; line-height: 1.6; color: #333333; }
.header { margin-bottom: 28px; }
.header .name { margin: 0; font-size: 20pt; font-weight: 300; }
.header .headline { margin: 0; color: #888888; }
.contacts { margin: 8px 0 0; font-size: 9pt; color: #888888; }
.contacts a { color: #888888; text-decoration: none; }
.section { display: grid; grid-template-columns: 120px 1fr; column-gap: 20px; margin-bottom: 20px; }
.section-title { grid-column: 1; margin: 0; font-size: 8.5pt; font-weight: 400; font-variant: small-caps; letter-spacing: 0.15em; color: #999999; }
.section > .item, .section > .skills, .section > .summary { grid-column: 2; }
.item { margin-bottom: 12px; page-break-inside: avoid; }
.title { margin: 0; font-weight: 500; }
.aside { color: #999999; }
.body { margin: 2px 0 0; white-space: pre-line; }
.skills { margin: 0; padding: 0; list-style: none; }
.skill { display: inline; }
.skill + .skill::before { content: " · "; color: #cccccc; }
.footer { margin-top: 32px; font-size: 8pt; color: #bbbbbb; }
{{end}}

{{define "header"}}<header class="header">
<h1 class="name">{{.Personal.FullName}}</h1>
{{with .Personal.Title}}<p class="headline">{{.}}</p>{{end}}
{{with .Contacts}}<p class="contacts">{{range $i, $c := .}}{{if $i}} · {{end}}{{template "contact" $c}}{{end}}</p>{{end}}
</header>{{end}}

{{define "section-title"}}<h2 class="section-title">{{.Title}}</h2>{{end}}

{{define "summary"}}<p class="summary body">{{.Summary}}</p>{{end}}

{{define "experience-item"}}<p class="title">{{.Position}} <span class="aside">at</span> {{.Company}}</p>
{{$d := dateRange .StartDate .EndDate .Current}}{{if or $d (opt .Location)}}<p class="aside">{{$d}}{{if and $d (opt .Location)}} / {{end}}{{opt .Location}}</p>{{end}}
{{with opt .Description}}<p class="body">{{.}}</p>{{end}}{{end}}

{{define "education-item"}}<p class="title">{{.Degree}}{{with opt .Field}}, {{.}}{{end}}</p>
<p class="aside">{{.Institution}}{{with dateRange .StartDate .EndDate false}} / {{.}}{{end}}{{with opt .GPA}} / {{.}}{{end}}</p>
{{with opt .Description}}<p class="body">{{.}}</p>{{end}}{{end}}

{{define "skill-item"}}{{.}}{{end}}

{{define "project-item"}}<p class="title">{{.Name}}{{with opt .URL}} <a class="aside" href="{{href .}}">{{linkLabel .}}</a>{{end}}</p>
{{with dateRange (opt .StartDate) .EndDate false}}<p class="aside">{{.}}</p>{{end}}
{{with .Description}}<p class="body">{{.}}</p>{{end}}
{{with .Technologies}}<p class="aside">{{join . " · "}}</p>{{end}}{{end}}

{{define "certification-item"}}<p class="title">{{.Name}}</p>
<p class="aside">{{.Issuer}}{{with .Date}} / {{.}}{{end}}{{with opt .URL}} / <a href="{{href .}}">{{linkLabel .}}</a>{{end}}</p>{{end}}

{{define "language-item"}}<p class="title">{{.Name}}{{with .Proficiency}} <span class="aside">{{.}}</span>{{end}}</p>{{end}}

{{define "reference-item"}}<p class="title">{{.Name}}</p>
{{if or (opt .Position) (opt .Company)}}<p class="aside">{{opt .Position}}{{if and (opt .Position) (opt .Company)}}, {{end}}{{opt .Company}}</p>{{end}}
{{with opt .Relationship}}<p class="aside">{{.}}</p>{{end}}
{{if or (opt .Email) (opt .Phone)}}<p class="aside">{{opt .Email}}{{if and (opt .Email) (opt .Phone)}} / {{end}}{{opt .Phone}}</p>{{end}}{{end}}

{{define "publication-item"}}<p class="title">{{.Title}}</p>
<p class="aside">{{.Publisher}}{{with .Date}} / {{.}}{{end}}{{with opt .URL}} / <a href="{{href .}}">{{linkLabel .}}</a>{{end}}</p>
{{with opt .Description}}<p class="body">{{.}}</p>{{end}}{{end}}

{{define "custom-item"}}<p class="title">{{.Title}}</p>
{{if or (opt .Subtitle) (opt .Date)}}<p class="aside">{{opt .Subtitle}}{{if and (opt .Subtitle) (opt .Date)}} / {{end}}{{opt .Date}}</p>{{end}}
{{with opt .Description}}<p class="body">{{.}}</p>{{end}}{{end}}

{{define "footer"}}{{with .LastUpdated}}<footer class="footer">{{.}}</footer>{{end}}{{end}}
`
