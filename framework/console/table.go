// Package console renders the CLI listings.
//
//	// Laravel: php artisan route:list
//	console.RouteList(os.Stdout, routes)
package console

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/km-arc/go-facade/framework/routing"
)

// RouteList writes routes as a table to w.
func RouteList(w io.Writer, routes []routing.Route) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Method", "URI"})
	for _, r := range routes {
		t.AppendRow(table.Row{r.Method, r.Pattern})
	}
	t.AppendFooter(table.Row{"Total", len(routes)})
	t.Render()
}

// BindingList writes the container's binding names as a table to w.
func BindingList(w io.Writer, names []string) {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Binding"})
	for i, name := range names {
		t.AppendRow(table.Row{i + 1, name})
	}
	t.Render()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}
