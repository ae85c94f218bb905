package main

import (
	"path/filepath"

	"github.com/harper-go/harper/adapter"
	"github.com/harper-go/harper/english"
	"github.com/harper-go/harper/markup"
	"github.com/harper-go/harper/token"
)

// harperExts lists the file extensions commands that walk a directory
// look for by default: structured-document source (markup) and plain text.
var harperExts = []string{".typ", ".md", ".txt"}

// isMarkupFile reports whether path should be parsed with the markup
// grammar rather than tokenized directly as plain English.
func isMarkupFile(path string) bool {
	switch filepath.Ext(path) {
	case ".typ", ".md":
		return true
	}
	return false
}

// tokenize turns a file's content into a Token stream, routing through the
// markup parser and format adapter for structured-document extensions and
// straight to the plain-English tokenizer otherwise.
func tokenize(path string, content []byte) []token.Token {
	if isMarkupFile(path) {
		return adapter.Translate(markup.Parse(content), content)
	}
	return english.ParseStr(string(content))
}
