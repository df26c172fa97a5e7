package server

import "html/template"

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html><head>
<meta charset="utf-8">
<title>rechub</title>
<style>
body{font-family:Inter,system-ui,Arial;background:#060b14;color:#fff;padding:20px;margin:0;}
h1{margin:0 0 16px;}
.controls{display:flex;gap:10px;flex-wrap:wrap;margin-bottom:18px;}
input,select,button{padding:8px 12px;border-radius:8px;border:1px solid #2a3a4d;background:#0c1624;color:#fff;}
button{cursor:pointer;}
.mood-btn{background:#123;border-color:#27455f;}
.prompt{background:rgba(255,255,255,0.05);border-radius:12px;padding:20px;max-width:480px;}
.count{color:#9fb6c8;font-size:13px;margin-bottom:12px;}
</style>
</head>
<body>
<h1>rechub</h1>
{{if .Loaded}}
<div class="count">{{.Count}} titles loaded</div>
<form class="controls" action="/recommend" method="get">
  <input type="text" name="q" placeholder="Search by title, description, or mood" required>
  <select name="type">
    <option value="all">All types</option>
    <option value="Anime">Anime</option>
    <option value="Movie">Movie</option>
    <option value="Web Series">Web Series</option>
  </select>
  <select name="sort">
    <option value="title">Sort by title</option>
    <option value="rating">Sort by rating</option>
  </select>
  <button type="submit">Search</button>
</form>
<div class="controls">
{{range .Moods}}  <a href="/recommend?q={{.}}"><button class="mood-btn" type="button">{{.}}</button></a>
{{end}}</div>
{{else}}
<div class="prompt">
  <p>No catalog is loaded. Upload a data file to get started.</p>
  <form action="/upload" method="post" enctype="multipart/form-data">
    <input type="file" name="catalog" accept="application/json" required>
    <button type="submit">Upload</button>
  </form>
</div>
{{end}}
</body></html>
`))

var resultsTemplate = template.Must(template.New("results").Parse(`<!doctype html>
<html><head>
<meta charset="utf-8">
<title>{{.Query}}</title>
<style>
body{font-family:Inter,system-ui,Arial;background:#060b14;color:#fff;padding:20px;margin:0;}
h1{margin:0 0 16px;}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(300px,1fr));gap:18px;}
.card{background:rgba(255,255,255,0.05);backdrop-filter:blur(10px);border-radius:12px;display:flex;gap:12px;padding:12px;align-items:flex-start;}
.poster{width:110px;height:160px;object-fit:cover;border-radius:8px;}
.meta{flex:1;}
.title{font-size:17px;margin:0;}
.sub{color:#9fb6c8;font-size:13px;}
.desc{color:#d6e6f4;font-size:14px;margin-top:6px;}
a{color:#9fb6c8;}
</style>
</head>
<body>
<h1>{{.Query}} Recommendations ({{.Count}})</h1>
<p><a href="/">&larr; back</a></p>
<div class="grid">
{{range .Cards}}  <div class="card">
    <img class="poster" src="{{.Poster}}">
    <div class="meta">
      <h3 class="title">{{.Title}}</h3>
      <div class="sub">{{.Type}} &bull; &#11088;{{.Rating}}</div>
      <p class="desc">{{.Description}}</p>
    </div>
  </div>
{{end}}</div>
</body></html>
`))

type indexData struct {
	Loaded bool
	Count  int
	Moods  []string
}

type card struct {
	// Poster may be a data: URL; typed so the template does not reject it.
	Poster      template.URL
	Title       string
	Type        string
	Rating      string
	Description string
}

type resultsData struct {
	Query string
	Count int
	Cards []card
}
