// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/jgrep/internal/command"
)

//go:embed jgrep.yaml
var pageYAML []byte

type Page struct {
	Short       string    `yaml:"short"`
	Description string    `yaml:"description"`
	Usage       string    `yaml:"usage"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Flag struct {
	Syntax      string
	Description string
	EnvVars     []string
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	Page
	Flags   []Flag
	Date    string
	Version string
}

type Outputs struct {
	Template string
	Name     string
}

const mdTemplate = `# jgrep

{{.Short}}

{{.Description}}

## Usage

` + "```" + `
{{.Usage}}
` + "```" + `

## Flags

| Flag | Description |
|---|---|
{{range .Flags}}| ` + "`{{.Syntax}}`" + ` | {{.Description}}{{if .EnvVars}} (env: {{join .EnvVars ", "}}){{end}} |
{{end}}
## Examples
{{range .Examples}}
{{.Description}}

` + "```" + `
{{.Command}}
` + "```" + `
{{end}}{{if .Notes}}
## Notes
{{range .Notes}}
- {{.}}{{end}}
{{end}}
_Generated {{.Date}} for {{.Version}}._
`

const manTemplate = `.TH JGREP 1 "{{.Date}}" "{{.Version}}" "jgrep manual"
.SH NAME
jgrep \- {{.Short}}
.SH SYNOPSIS
{{.Usage}}
.SH DESCRIPTION
{{.Description}}
.SH OPTIONS
{{range .Flags}}.TP
.B {{.Syntax}}
{{.Description}}
{{end}}.SH EXAMPLES
{{range .Examples}}.TP
.B {{escape .Command}}
{{.Description}}
{{end}}`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs-dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	data, err := loadTemplateData(pageYAML, command.NewSearchFlags(""), getVersion())
	if err != nil {
		panic(err)
	}

	types := []Outputs{
		{Template: mdTemplate, Name: filepath.Join(docs, "jgrep.md")},
		{Template: manTemplate, Name: filepath.Join(docs, "man", "share", "man1", "jgrep.1")},
	}

	for _, t := range types {
		if err := os.MkdirAll(filepath.Dir(t.Name), 0755); err != nil {
			panic(err)
		}

		file, err := os.Create(t.Name)
		if err != nil {
			panic(err)
		}
		fmt.Println("Generating", t.Name)

		if err := render(file, t.Template, data); err != nil {
			panic(err)
		}

		file.Close()
	}
}

// loadTemplateData merges the page description with the live flag set.
func loadTemplateData(raw []byte, flags []cli.Flag, version string) (TemplateData, error) {
	var page Page
	if err := yaml.Unmarshal(raw, &page); err != nil {
		return TemplateData{}, err
	}

	return TemplateData{
		Page:    page,
		Flags:   describeFlags(flags),
		Date:    time.Now().Format("January 2, 2006"),
		Version: version,
	}, nil
}

// describeFlags renders each flag's syntax the way it is typed on the
// command line.
func describeFlags(flags []cli.Flag) []Flag {
	result := make([]Flag, 0, len(flags))
	for _, f := range flags {
		doc, ok := f.(cli.DocGenerationFlag)
		if !ok {
			continue
		}

		name := f.Names()[0]
		syntax := "--" + name
		if len(name) == 1 {
			syntax = "-" + name
		}
		if doc.TakesValue() {
			syntax += " <" + doc.TypeName() + ">"
		}

		result = append(result, Flag{
			Syntax:      syntax,
			Description: doc.GetUsage(),
			EnvVars:     doc.GetEnvVars(),
		})
	}
	return result
}

func render(w io.Writer, tmpl string, data TemplateData) error {
	t, err := template.New("page").Funcs(template.FuncMap{
		"join":   strings.Join,
		"escape": func(s string) string { return strings.ReplaceAll(s, `\`, `\\`) },
	}).Parse(tmpl)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
