package main

import "html/template"

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

const dashboardHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Insider Deals</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem auto; max-width: 1100px; color: #1a1a2e; }
h1 { font-size: 1.4rem; }
.status { color: #555; }
.status.error { color: #b00020; font-weight: 600; }
nav.tabs a, nav.modes a { display: inline-block; padding: .4rem .8rem; margin-right: .3rem; text-decoration: none; color: #1a1a2e; border: 1px solid #ccc; border-radius: 4px; }
nav.tabs a.active, nav.modes a.active { background: #1a1a2e; color: #fff; border-color: #1a1a2e; }
nav.modes a { font-size: .85rem; padding: .25rem .6rem; }
form.search { margin: .8rem 0; }
form.search input[type=text] { padding: .35rem .5rem; width: 18rem; }
table { border-collapse: collapse; width: 100%; font-size: .85rem; margin-top: .6rem; }
th, td { border-bottom: 1px solid #e2e2e2; padding: .35rem .5rem; text-align: left; white-space: nowrap; }
th { background: #f4f4f6; }
td.positive { color: #0a7d33; }
td.negative { color: #b00020; }
td.empty { text-align: center; color: #888; padding: 1.2rem; }
.pager { margin: .8rem 0; display: flex; gap: 1rem; align-items: center; }
.pager .disabled { color: #bbb; }
.pager .sizes { margin-left: auto; font-size: .85rem; }
.summary { margin: .8rem 0; font-size: .85rem; }
.summary caption { text-align: left; font-weight: 600; padding-bottom: .3rem; }
.summary td.positive { color: #0a7d33; }
.summary td.negative { color: #b00020; }
.source { color: #999; font-size: .75rem; }
</style>
</head>
<body>
<h1>Insider Deals</h1>
<p class="status{{if .LoadErr}} error{{end}}">{{.Status}}</p>
{{if not .LoadErr}}
<nav class="tabs">{{range .Tabs}}<a href="{{.URL}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>{{end}}</nav>
{{if .Modes}}<nav class="modes">{{range .Modes}}<a href="{{.URL}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>{{end}}</nav>{{end}}
<form class="search" method="get" action="/">
<input type="hidden" name="tab" value="{{.HiddenTab}}">
{{if .HiddenFilter}}<input type="hidden" name="filter" value="{{.HiddenFilter}}">{{end}}
<input type="hidden" name="page_size" value="{{.HiddenSize}}">
<input type="text" name="q" value="{{.Query}}" placeholder="Search insider, symbol, company...">
<button type="submit">Search</button>
</form>
{{if .Summary}}
<table class="summary">
<caption>Most active symbols</caption>
<thead><tr><th>Symbol</th><th>Company</th><th>Bought</th><th>Sold</th><th>Net</th><th>Trades</th></tr></thead>
<tbody>
{{range .Summary}}<tr><td>{{.Symbol}}</td><td>{{.IssuerName}}</td><td>{{.Buys}}</td><td>{{.Sells}}</td><td{{if .Tone}} class="{{.Tone}}"{{end}}>{{.Net}}</td><td>{{.Trades}}</td></tr>
{{end}}
</tbody>
</table>
{{end}}
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{if .Rows}}{{range .Rows}}<tr>{{range .}}<td{{if .Class}} class="{{.Class}}"{{end}}>{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Text}}</a>{{else}}{{.Text}}{{end}}</td>{{end}}</tr>
{{end}}{{else}}<tr><td colspan="{{.ColSpan}}" class="empty">No results.</td></tr>
{{end}}
</tbody>
</table>
<div class="pager">
{{if .PrevURL}}<a href="{{.PrevURL}}">&laquo; Prev</a>{{else}}<span class="disabled">&laquo; Prev</span>{{end}}
<span>{{.PageLabel}}</span>
{{if .NextURL}}<a href="{{.NextURL}}">Next &raquo;</a>{{else}}<span class="disabled">Next &raquo;</span>{{end}}
<span class="sizes">Rows per page:
{{range .Sizes}}{{if .Selected}}<strong>{{.Size}}</strong>{{else}}<a href="{{.URL}}">{{.Size}}</a>{{end}}
{{end}}</span>
</div>
{{if .Source}}<p class="source">Source: {{.Source}}</p>{{end}}
{{end}}
</body>
</html>
`
