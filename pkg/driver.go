package crho

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Frontend wires a lexer and parser together for a whole input and owns
// the session-wide pieces: the operator table, the diagnostic collector
// and the logger. The zero value is usable; every field has a default.
type Frontend struct {
	Table     PrecedenceTable
	Collector *Collector
	Log       *slog.Logger
}

func NewFrontend() *Frontend {
	return &Frontend{}
}

// ParseFile parses the named file. The error covers opening the file
// only; problems in the source itself are collected on the returned AST.
func (f *Frontend) ParseFile(path string) (*AST, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer file.Close()

	return f.ParseReader(path, file), nil
}

// ParseReader parses a whole stream under the given name. It always
// returns an AST; whatever could not be parsed is reported to the
// collector and recorded in AST.Errors.
func (f *Frontend) ParseReader(name string, r io.Reader) *AST {
	log := f.logger()
	log.Debug("parse session started", "file", name)

	lexer := NewLexer(name, r)
	parser := NewParserWithTable(lexer, f.table())

	ast := parser.Run(f.collector())
	ast.Filename = name

	if err := lexer.Err(); err != nil {
		err = fmt.Errorf("%s: read: %w", name, err)
		f.collector().Report(err)
		ast.Errors = append(ast.Errors, err)
	}

	log.Debug("parse session finished",
		"file", name,
		"funcs", len(ast.Funcs),
		"errors", len(ast.Errors))
	return ast
}

func (f *Frontend) table() PrecedenceTable {
	if f.Table == nil {
		return DefaultPrecedence()
	}
	return f.Table
}

func (f *Frontend) collector() *Collector {
	if f.Collector == nil {
		f.Collector = NewCollector(nil)
	}
	return f.Collector
}

func (f *Frontend) logger() *slog.Logger {
	if f.Log == nil {
		return slog.Default()
	}
	return f.Log
}
