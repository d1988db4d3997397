// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgscene

// HoverScript defines the ECMAScript function incidentsHover(root),
// which attaches pointer handlers to the markers of a chart written by
// WriteSVG. root is the chart's <svg> element. The handlers follow
// chart.Marker: mouseover enters, mousemove moves, and mouseout
// leaves.
//
// The script contains no '<' or '&', so it is safe in both HTML and
// SVG documents.
const HoverScript = `function incidentsHover(root) {
  var plot = root.querySelector("#plot");
  var tip = root.querySelector("#tooltip");
  var lines = tip.querySelectorAll("text");
  function place(evt) {
    var p = root.createSVGPoint();
    p.x = evt.clientX;
    p.y = evt.clientY;
    p = p.matrixTransform(plot.getScreenCTM().inverse());
    tip.setAttribute("transform", "translate(" + (p.x + 10) + "," + (p.y + 10) + ")");
  }
  function leave(c) {
    tip.setAttribute("visibility", "hidden");
    plot.querySelectorAll(".hover-circle").forEach(function(h) { h.remove(); });
    c.setAttribute("opacity", "0");
  }
  root.querySelectorAll("circle.data-point").forEach(function(c) {
    c.addEventListener("mouseover", function(evt) {
      lines[0].textContent = "Year: " + c.getAttribute("data-year");
      lines[1].textContent = "Accidents: " + c.getAttribute("data-count");
      tip.setAttribute("visibility", "visible");
      place(evt);
      c.setAttribute("opacity", "1");
      var h = document.createElementNS("http://www.w3.org/2000/svg", "circle");
      h.setAttribute("class", "hover-circle");
      h.setAttribute("cx", c.getAttribute("cx"));
      h.setAttribute("cy", c.getAttribute("cy"));
      h.setAttribute("r", "6");
      h.setAttribute("pointer-events", "none");
      h.setAttribute("style", "fill:steelblue;stroke-width:2");
      plot.insertBefore(h, tip);
    });
    c.addEventListener("mousemove", place);
    c.addEventListener("mouseout", function() { leave(c); });
  });
}`
