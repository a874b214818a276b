package help

import "html/template"

var pageTemplate = template.Must(template.New("help").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 820px; margin: 2rem auto; padding: 0 1rem; color: #1d1f23; line-height: 1.5; }
    table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
    th, td { border: 1px solid #d8dbe0; padding: .4rem .6rem; text-align: left; vertical-align: top; }
    th { background: #f4f5f7; }
    pre { padding: .75rem 1rem; border-radius: 6px; overflow-x: auto; }
    code { font-family: ui-monospace, monospace; font-size: .9em; }
  </style>
</head>
<body>
  <article>
    {{.Content}}
  </article>
  <p><a href="/">Open the chat</a></p>
</body>
</html>`))
