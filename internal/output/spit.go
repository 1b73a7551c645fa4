// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/jgrep/internal/config"
	"github.com/tfctl/jgrep/internal/document"
	"github.com/tfctl/jgrep/internal/tokenize"
)

// Mode selects how a document is written.
type Mode string

const (
	JSON Mode = "json"
	YAML Mode = "yaml"
	Text Mode = "text"
)

// ParseMode validates s as a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case JSON, YAML, Text:
		return m, nil
	default:
		return "", fmt.Errorf("unknown output mode: %s", s)
	}
}

// ResolveMode picks the emission mode for w. JGREP_OUTPUT wins over the
// config file's output key. Without either, terminals get text and
// everything else gets json.
func ResolveMode(w io.Writer) Mode {
	candidates := []string{os.Getenv("JGREP_OUTPUT")}
	if cfg, err := config.GetString("output"); err == nil {
		candidates = append(candidates, cfg)
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		mode, err := ParseMode(c)
		if err != nil {
			log.Warnf("output mode ignored: value=%s", c)
			continue
		}
		return mode
	}

	if isTerminal(w) {
		return Text
	}
	return JSON
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Emit writes doc to w in the given mode. Default to stdout.
func Emit(w io.Writer, doc document.Document, mode Mode) error {
	if w == nil {
		w = os.Stdout
	}

	switch mode {
	case YAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(out)
		return err
	case Text:
		out := Render(doc, NewPalette(isTerminal(w) && lipgloss.HasDarkBackground(os.Stdin, os.Stdout)))
		if !isTerminal(w) {
			out = ansi.Strip(out)
		}
		_, err := io.WriteString(w, out)
		return err
	default:
		out, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
}

// Palette holds the styles used for text rendering.
type Palette struct {
	Title  lipgloss.Style
	Kinds  map[tokenize.Kind]lipgloss.Style
	Plain  lipgloss.Style
	Errors lipgloss.Style
}

// NewPalette builds styles from the colors.* config keys, falling back to
// defaults suited to the terminal background.
func NewPalette(isDark bool) Palette {
	title, key, str, num, match := getColors("colors", isDark)

	return Palette{
		Title: lipgloss.NewStyle().Bold(true).Foreground(title),
		Kinds: map[tokenize.Kind]lipgloss.Style{
			tokenize.Key:    lipgloss.NewStyle().Foreground(key),
			tokenize.String: lipgloss.NewStyle().Foreground(str),
			tokenize.Number: lipgloss.NewStyle().Foreground(num),
			tokenize.Value:  lipgloss.NewStyle().Foreground(num),
			tokenize.Match:  lipgloss.NewStyle().Foreground(match).Bold(true).Underline(true),
		},
		Plain:  lipgloss.NewStyle(),
		Errors: lipgloss.NewStyle().Foreground(match),
	}
}

// Render returns doc as styled text terminated by a newline.
func Render(doc document.Document, p Palette) string {
	var sb strings.Builder

	if doc.IsError() {
		sb.WriteString(p.Errors.Render(doc.Message()))
		sb.WriteString("\n")
		return sb.String()
	}

	switch doc.Format() {
	case document.TokensFormat:
		for _, line := range doc.Tokens() {
			sb.WriteString(RenderTokens(line, p))
			sb.WriteString("\n")
		}
	case document.TableFormat:
		sb.WriteString(TableWriter(doc.Table(), p))
		sb.WriteString("\n")
	case document.PrettyFormat:
		for _, block := range doc.Pretty().Blocks {
			sb.WriteString(block)
			sb.WriteString("\n")
		}
	default:
		for _, line := range doc.Lines() {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// RenderTokens styles each token by kind. Text and punctuation are left
// unstyled.
func RenderTokens(tokens []tokenize.Token, p Palette) string {
	var sb strings.Builder
	for _, tok := range tokens {
		style, ok := p.Kinds[tok.Kind]
		if !ok {
			sb.WriteString(tok.Text)
			continue
		}
		sb.WriteString(style.Render(tok.Text))
	}
	return sb.String()
}

// TableWriter renders an extracted table with a bold title row and hidden
// borders.
func TableWriter(tbl document.Table, p Palette) string {
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := p.Plain
			if row == table.HeaderRow {
				style = p.Title
			}
			if col > 0 {
				style = style.PaddingLeft(1)
			}
			return style
		}).
		Headers(tbl.Header...).
		Rows(tbl.Rows...)

	return t.String()
}

// getColors returns configured colors for text rendering. Each color is
// selected based on terminal background so output stays visible for light
// and dark themes.
func getColors(key string, isDark bool) (title, keys, strs, nums, match color.Color) {
	// Use the explicit color if found in the config and leave it up to the user
	// to choose appropriate colors for their theme.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	title = resolveColor(key+".title", "#b08800", "#f6be00")
	keys = resolveColor(key+".key", "#0088a0", "#00c8f0")
	strs = resolveColor(key+".string", "#2e7d32", "#8bd17c")
	nums = resolveColor(key+".number", "#8e24aa", "#d7a1f9")
	match = resolveColor(key+".match", "#d7005f", "#ff5f87")

	return
}
