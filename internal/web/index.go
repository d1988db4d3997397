// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import "html/template"

type indexData struct {
	Session   string
	Countries []countryOption
	Script    template.JS
}

type countryOption struct {
	Value, Label string
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Aircraft incidents per year</title>
    <style>
body {
  font-family: sans-serif;
  color: #222;
}
#lineChart {
  margin-top: 8px;
}
    </style>
  </head>
  <body>
    <label for="categorySelect">Country:</label>
    <select id="categorySelect">
      <option value="">All countries</option>
{{- range .Countries}}
      <option value="{{.Value}}">{{.Label}}</option>
{{- end}}
    </select>
    <div id="lineChart"></div>
    <script>
var session = {{.Session}};
{{.Script}}
function updateChart() {
  var sel = document.getElementById("categorySelect");
  var url = "chart.svg?session=" + encodeURIComponent(session);
  if (sel.value !== "") {
    url += "&country=" + encodeURIComponent(sel.value);
  }
  fetch(url).then(function(resp) {
    if (!resp.ok) {
      throw new Error(resp.statusText);
    }
    return resp.text();
  }).then(function(text) {
    var div = document.getElementById("lineChart");
    div.innerHTML = text;
    incidentsHover(div.querySelector("svg"));
  }).catch(function(err) {
    console.log("loading chart:", err);
  });
}
document.getElementById("categorySelect").addEventListener("change", updateChart);
updateChart();
    </script>
  </body>
</html>
`))
