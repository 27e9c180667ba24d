// Command docgen renders the habitplant command reference as a single HTML
// page.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Flyrell/habitplant/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Content}}
</body>
</html>
`

// PageData is the template data for the reference page.
type PageData struct {
	Title   string
	Content template.HTML
}

func main() {
	outPath := flag.String("out", "docs/commands.html", "output HTML file")
	flag.Parse()

	page, err := render(cli.Root())
	if err != nil {
		fatal("rendering reference: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fatal("creating directory for %s: %v", *outPath, err)
	}
	if err := os.WriteFile(*outPath, page, 0o644); err != nil {
		fatal("writing %s: %v", *outPath, err)
	}
	fmt.Printf("  generated %s\n", *outPath)
}

// render converts the command tree under root into a complete HTML page.
func render(root *cobra.Command) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var content bytes.Buffer
	if err := md.Convert([]byte(referenceMarkdown(root)), &content); err != nil {
		return nil, err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, err
	}
	var page bytes.Buffer
	err = tmpl.Execute(&page, PageData{
		Title:   root.Name() + " command reference",
		Content: template.HTML(content.String()),
	})
	return page.Bytes(), err
}

// referenceMarkdown documents every visible command under root, depth first
// in name order.
func referenceMarkdown(root *cobra.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", root.Name(), root.Short)
	for _, cmd := range visibleCommands(root) {
		writeCommand(&b, cmd)
	}
	return b.String()
}

func visibleCommands(parent *cobra.Command) []*cobra.Command {
	children := parent.Commands()
	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })

	var out []*cobra.Command
	for _, c := range children {
		if c.Hidden || c.Name() == "help" {
			continue
		}
		out = append(out, c)
		out = append(out, visibleCommands(c)...)
	}
	return out
}

func writeCommand(b *strings.Builder, cmd *cobra.Command) {
	fmt.Fprintf(b, "## %s\n\n%s\n\n", cmd.CommandPath(), cmd.Short)
	fmt.Fprintf(b, "    %s\n\n", cmd.UseLine())
	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(b, "Aliases: `%s`\n\n", strings.Join(cmd.Aliases, "`, `"))
	}

	var rows []string
	cmd.NonInheritedFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		name := "`--" + f.Name + "`"
		if f.Shorthand != "" {
			name = "`-" + f.Shorthand + "`, " + name
		}
		def := f.DefValue
		if def == "" || def == "false" {
			def = " "
		} else {
			def = "`" + def + "`"
		}
		rows = append(rows, fmt.Sprintf("| %s | %s | %s |", name, f.Usage, def))
	})
	if len(rows) > 0 {
		b.WriteString("| Flag | Description | Default |\n|---|---|---|\n")
		b.WriteString(strings.Join(rows, "\n"))
		b.WriteString("\n\n")
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
