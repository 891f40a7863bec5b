package view

// Исходники встроенных шаблонов.
//
// Все раскладки работают с одной и той же моделью Portfolio и
// отличаются только вёрсткой. Общее правило: секция выводится только
// при непустых данных ({{if ...}}), пустое портфолио рендерится как
// страница с одной шапкой.
var templateSources = map[string]string{
	"classic": classicTemplate,
	"modern":  modernTemplate,
	"minimal": minimalTemplate,
	"elegant": elegantTemplate,
	"dark":    darkTemplate,
}

const classicTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{if .Name}}{{.Name}}{{else}}Portfolio{{end}}</title>
<style>
body { font-family: Georgia, serif; max-width: 720px; margin: 2rem auto; color: #222; }
h1 { border-bottom: 2px solid #222; padding-bottom: .3rem; }
h2 { margin-top: 1.6rem; color: #444; }
.contact { color: #666; }
ul { padding-left: 1.2rem; }
.entry { margin-bottom: .8rem; }
.entry .meta { color: #777; font-size: .9rem; }
</style>
</head>
<body>
{{if .Name}}<h1>{{.Name}}</h1>{{end}}
{{if or .Email .Phone}}<p class="contact">{{.Email}}{{if and .Email .Phone}} · {{end}}{{.Phone}}</p>{{end}}
{{if .Summary}}<section id="summary"><h2>Summary</h2><p>{{.Summary}}</p></section>{{end}}
{{if .Skills}}<section id="skills"><h2>Skills</h2><ul>{{range .Skills}}<li>{{.}}</li>{{end}}</ul></section>{{end}}
{{if .Experience}}<section id="experience"><h2>Experience</h2>{{range .Experience}}<div class="entry"><strong>{{.Title}}</strong> — {{.Company}}<div class="meta">{{.Duration}}</div><p>{{.Description}}</p></div>{{end}}</section>{{end}}
{{if .Projects}}<section id="projects"><h2>Projects</h2>{{range .Projects}}<div class="entry"><strong>{{.Title}}</strong>{{if .Link}} — <a href="{{.Link}}">{{.Link}}</a>{{end}}<p>{{.Description}}</p></div>{{end}}</section>{{end}}
{{if .Education}}<section id="education"><h2>Education</h2>{{range .Education}}<div class="entry"><strong>{{.Degree}}</strong> — {{.Institution}}<div class="meta">{{.Year}}</div></div>{{end}}</section>{{end}}
{{if .Achievements}}<section id="achievements"><h2>Achievements</h2><ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul></section>{{end}}
</body>
</html>
`

const modernTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{if .Name}}{{.Name}}{{else}}Portfolio{{end}}</title>
<style>
body { font-family: "Segoe UI", Helvetica, Arial, sans-serif; margin: 0; color: #1c1c1e; }
header { background: #1e293b; color: #fff; padding: 2.5rem 2rem; }
header .contact { color: #94a3b8; }
main { max-width: 860px; margin: 0 auto; padding: 1rem 2rem; }
h2 { text-transform: uppercase; letter-spacing: .08em; font-size: .95rem; color: #475569; }
.chips span { display: inline-block; background: #e2e8f0; border-radius: 999px; padding: .2rem .8rem; margin: .15rem; }
.entry { border-left: 3px solid #1e293b; padding-left: 1rem; margin: 1rem 0; }
.entry .meta { color: #64748b; font-size: .85rem; }
</style>
</head>
<body>
<header>
{{if .Name}}<h1>{{.Name}}</h1>{{end}}
{{if or .Email .Phone}}<p class="contact">{{.Email}}{{if and .Email .Phone}} | {{end}}{{.Phone}}</p>{{end}}
</header>
<main>
{{if .Summary}}<section id="summary"><h2>About</h2><p>{{.Summary}}</p></section>{{end}}
{{if .Skills}}<section id="skills"><h2>Skills</h2><div class="chips">{{range .Skills}}<span>{{.}}</span>{{end}}</div></section>{{end}}
{{if .Experience}}<section id="experience"><h2>Experience</h2>{{range .Experience}}<div class="entry"><strong>{{.Title}}</strong> @ {{.Company}}<div class="meta">{{.Duration}}</div><p>{{.Description}}</p></div>{{end}}</section>{{end}}
{{if .Projects}}<section id="projects"><h2>Projects</h2>{{range .Projects}}<div class="entry"><strong>{{.Title}}</strong>{{if .Link}} · <a href="{{.Link}}">link</a>{{end}}<p>{{.Description}}</p></div>{{end}}</section>{{end}}
{{if .Education}}<section id="education"><h2>Education</h2>{{range .Education}}<div class="entry"><strong>{{.Degree}}</strong>, {{.Institution}}<div class="meta">{{.Year}}</div></div>{{end}}</section>{{end}}
{{if .Achievements}}<section id="achievements"><h2>Achievements</h2><ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul></section>{{end}}
</main>
</body>
</html>
`

const minimalTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{if .Name}}{{.Name}}{{else}}Portfolio{{end}}</title>
<style>
body { font-family: ui-monospace, "SF Mono", Menlo, monospace; max-width: 640px; margin: 3rem auto; color: #111; line-height: 1.5; }
h1 { font-size: 1.3rem; }
h2 { font-size: 1rem; margin-top: 2rem; }
h2::before { content: "## "; color: #999; }
a { color: #111; }
</style>
</head>
<body>
{{if .Name}}<h1>{{.Name}}</h1>{{end}}
{{if or .Email .Phone}}<p>{{.Email}}{{if and .Email .Phone}} / {{end}}{{.Phone}}</p>{{end}}
{{if .Summary}}<section id="summary"><h2>summary</h2><p>{{.Summary}}</p></section>{{end}}
{{if .Skills}}<section id="skills"><h2>skills</h2><p>{{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s}}{{end}}</p></section>{{end}}
{{if .Experience}}<section id="experience"><h2>experience</h2>{{range .Experience}}<p><strong>{{.Title}}</strong>, {{.Company}} ({{.Duration}})<br>{{.Description}}</p>{{end}}</section>{{end}}
{{if .Projects}}<section id="projects"><h2>projects</h2>{{range .Projects}}<p><strong>{{.Title}}</strong>{{if .Link}} — <a href="{{.Link}}">{{.Link}}</a>{{end}}<br>{{.Description}}</p>{{end}}</section>{{end}}
{{if .Education}}<section id="education"><h2>education</h2>{{range .Education}}<p>{{.Degree}}, {{.Institution}}, {{.Year}}</p>{{end}}</section>{{end}}
{{if .Achievements}}<section id="achievements"><h2>achievements</h2><ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul></section>{{end}}
</body>
</html>
`

const elegantTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{if .Name}}{{.Name}}{{else}}Portfolio{{end}}</title>
<style>
body { font-family: "Playfair Display", Georgia, serif; max-width: 700px; margin: 3rem auto; color: #2b2b2b; }
h1 { text-align: center; font-weight: 400; letter-spacing: .06em; }
.contact { text-align: center; color: #8a7b5c; font-style: italic; }
h2 { font-weight: 400; color: #8a7b5c; border-bottom: 1px solid #d9cfb8; padding-bottom: .2rem; margin-top: 2rem; }
.entry { margin-bottom: 1rem; }
.entry .meta { color: #999; font-size: .85rem; }
ul { padding-left: 1.2rem; }
</style>
</head>
<body>
{{if .Name}}<h1>{{.Name}}</h1>{{end}}
{{if or .Email .Phone}}<p class="contact">{{.Email}}{{if and .Email .Phone}} — {{end}}{{.Phone}}</p>{{end}}
{{if .Summary}}<section id="summary"><h2>Profile</h2><p>{{.Summary}}</p></section>{{end}}
{{if .Skills}}<section id="skills"><h2>Skills</h2><p>{{range $i, $s := .Skills}}{{if $i}} · {{end}}{{$s}}{{end}}</p></section>{{end}}
{{if .Experience}}<section id="experience"><h2>Experience</h2>{{range .Experience}}<div class="entry"><strong>{{.Title}}</strong>, {{.Company}}<div class="meta">{{.Duration}}</div><p>{{.Description}}</p></div>{{end}}</section>{{end}}
{{if .Projects}}<section id="projects"><h2>Projects</h2>{{range .Projects}}<div class="entry"><strong>{{.Title}}</strong>{{if .Link}} — <a href="{{.Link}}">{{.Link}}</a>{{end}}<p>{{.Description}}</p></div>{{end}}</section>{{end}}
{{if .Education}}<section id="education"><h2>Education</h2>{{range .Education}}<div class="entry"><strong>{{.Degree}}</strong>, {{.Institution}}<div class="meta">{{.Year}}</div></div>{{end}}</section>{{end}}
{{if .Achievements}}<section id="achievements"><h2>Achievements</h2><ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul></section>{{end}}
</body>
</html>
`

const darkTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{if .Name}}{{.Name}}{{else}}Portfolio{{end}}</title>
<style>
body { font-family: "Segoe UI", Helvetica, Arial, sans-serif; background: #0f1115; color: #e6e6e6; max-width: 780px; margin: 2rem auto; padding: 0 1rem; }
h1 { color: #7dd3fc; }
.contact { color: #9ca3af; }
h2 { color: #7dd3fc; font-size: 1rem; text-transform: uppercase; letter-spacing: .1em; margin-top: 2rem; }
.chips span { display: inline-block; background: #1f2937; border: 1px solid #374151; border-radius: 4px; padding: .2rem .7rem; margin: .15rem; }
.entry { background: #161a22; border-radius: 6px; padding: .8rem 1rem; margin: .8rem 0; }
.entry .meta { color: #6b7280; font-size: .85rem; }
a { color: #7dd3fc; }
ul { padding-left: 1.2rem; }
</style>
</head>
<body>
{{if .Name}}<h1>{{.Name}}</h1>{{end}}
{{if or .Email .Phone}}<p class="contact">{{.Email}}{{if and .Email .Phone}} · {{end}}{{.Phone}}</p>{{end}}
{{if .Summary}}<section id="summary"><h2>About</h2><p>{{.Summary}}</p></section>{{end}}
{{if .Skills}}<section id="skills"><h2>Skills</h2><div class="chips">{{range .Skills}}<span>{{.}}</span>{{end}}</div></section>{{end}}
{{if .Experience}}<section id="experience"><h2>Experience</h2>{{range .Experience}}<div class="entry"><strong>{{.Title}}</strong> @ {{.Company}}<div class="meta">{{.Duration}}</div><p>{{.Description}}</p></div>{{end}}</section>{{end}}
{{if .Projects}}<section id="projects"><h2>Projects</h2>{{range .Projects}}<div class="entry"><strong>{{.Title}}</strong>{{if .Link}} · <a href="{{.Link}}">link</a>{{end}}<p>{{.Description}}</p></div>{{end}}</section>{{end}}
{{if .Education}}<section id="education"><h2>Education</h2>{{range .Education}}<div class="entry"><strong>{{.Degree}}</strong>, {{.Institution}}<div class="meta">{{.Year}}</div></div>{{end}}</section>{{end}}
{{if .Achievements}}<section id="achievements"><h2>Achievements</h2><ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul></section>{{end}}
</body>
</html>
`
