// Package chart renders the analytics results as standalone HTML pages
// built with go-echarts.
//
// Each renderer takes prepared data and writes one chart to an
// io.Writer: trips per station (bar), monthly trend (line), duration
// histogram (bar over fixed-width bins) and user-type share (pie).
// RenderAll writes the full set into a directory, one .html per chart.
package chart
