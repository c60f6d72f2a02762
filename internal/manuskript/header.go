// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manuskript loads a Manuskript writing project from disk into the
// outline model: the OPML world file, the character sheet files, and the
// outline directory tree. Each section loads independently so a partial
// project still converts.
package manuskript

import "strings"

// header parser states. A Manuskript text file is a YAML-like header,
// a gap of blank lines, and an optional Markdown body.
const (
	stateHeader = iota
	stateGap
	stateBody
)

// ParseHeader splits a Manuskript text file into its metadata header and
// its body lines. Header entries are "Key: value" lines; lines indented
// with spaces continue the previous key, and continuation lines join as
// separate paragraphs. The first blank line ends the header; the body
// starts at the next non-blank line and runs to the end of the file.
func ParseHeader(data string) (map[string]string, []string) {
	metadata := make(map[string]string)
	var valueLines []string
	var body []string
	key := ""
	state := stateHeader

	flush := func() {
		if key != "" {
			metadata[key] = strings.Join(valueLines, "\n\n")
			valueLines = nil
		}
	}

	for _, line := range strings.Split(data, "\n") {
		switch state {
		case stateBody:
			body = append(body, line)
		case stateHeader:
			switch {
			case strings.HasPrefix(line, " "):
				valueLines = append(valueLines, strings.TrimSpace(line))
			case strings.Contains(line, ":"):
				flush()
				k, v, _ := strings.Cut(line, ":")
				key = k
				valueLines = append(valueLines, strings.TrimSpace(v))
			case line == "":
				flush()
				state = stateGap
			}
		case stateGap:
			if line != "" {
				state = stateBody
				body = append(body, line)
			}
		}
	}
	if state == stateHeader {
		flush()
	}
	return metadata, body
}

// joinParagraphs turns body source lines into Markdown paragraphs separated
// by blank lines. Blank source lines are dropped so gaps stay single.
func joinParagraphs(lines []string) string {
	var paragraphs []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			paragraphs = append(paragraphs, l)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

// breakParagraphs converts the single newlines Manuskript stores inside
// attribute text into Markdown paragraph breaks.
func breakParagraphs(text string) string {
	return strings.ReplaceAll(text, "\n", "\n\n")
}
