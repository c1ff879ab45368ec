package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/abiiranathan/cnabsearch/cnab"
	"github.com/fatih/color"
)

var separator = strings.Repeat("-", 50)

// Printer writes query results for a terminal.
type Printer struct {
	w      io.Writer
	blue   *color.Color
	green  *color.Color
	yellow *color.Color
}

func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:      w,
		blue:   color.New(color.FgBlue),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
	}

	if noColor {
		for _, c := range []*color.Color{p.blue, p.green, p.yellow} {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) Segments(results []cnab.SegmentFieldResult) {
	for _, r := range results {
		fmt.Fprintf(p.w, "Segmento: %s\n", r.Segment)
		fmt.Fprintf(p.w, "Info: %s\n", r.Info)
		fmt.Fprintf(p.w, "Linha: %s\n", r.Line)
		fmt.Fprintln(p.w, separator)
	}
}

func (p *Printer) Names(matches []cnab.NameMatch) {
	for _, m := range matches {
		p.blue.Fprintf(p.w, "Nome da Empresa: %s\n", m.Nome)
		p.green.Fprintf(p.w, "Endereço: %s, CEP: %s, Cidade: %s, Estado: %s\n",
			m.Endereco, m.Cep, m.Cidade, m.Estado)
		p.yellow.Fprintf(p.w, "Linha completa: %s\n", m.Linha)
		fmt.Fprintln(p.w, separator)
	}
}

func (p *Printer) Exported(filename string, n int) {
	p.green.Fprintf(p.w, "Resultados exportados para %s (%d registros)\n", filename, n)
}

// Layout prints the named field table.
func (p *Printer) Layout(fields []cnab.Field) {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CAMPO\tINICIO\tFIM\tTAMANHO")
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", f.Name, f.Start, f.End, f.Len())
	}
	tw.Flush()
}
