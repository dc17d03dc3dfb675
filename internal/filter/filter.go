// Package filter runs a manifest transform as a standard-stream filter:
// read all of stdin, parse, edit, and write the result to stdout, with
// human-readable status on stderr. The JSON stream and the diagnostic
// stream never mix, so filter output stays pipeable.
package filter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/quantmind-br/bunmigrate/internal/jsondoc"
	"github.com/quantmind-br/bunmigrate/internal/utils"
)

// indent is the output indentation; package manifests conventionally use
// two spaces.
const indent = "  "

// Transform edits a parsed manifest in place and returns the notes to
// print on the diagnostic stream.
type Transform func(doc *jsondoc.Value) (notes []string, err error)

// Options configures a Pipeline. Zero-value streams default to the
// process's standard streams.
type Options struct {
	In        io.Reader
	Out       io.Writer
	Diag      io.Writer
	Transform Transform
	Logger    *utils.Logger
}

// Pipeline is a single-pass stdin→stdout manifest filter.
type Pipeline struct {
	in        io.Reader
	out       io.Writer
	diag      io.Writer
	transform Transform
	log       *utils.Logger
}

// New creates a pipeline for the given transform.
func New(opts Options) *Pipeline {
	p := &Pipeline{
		in:        opts.In,
		out:       opts.Out,
		diag:      opts.Diag,
		transform: opts.Transform,
		log:       opts.Logger,
	}
	if p.in == nil {
		p.in = os.Stdin
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.diag == nil {
		p.diag = os.Stderr
	}
	if p.log == nil {
		p.log = utils.NewDefaultLogger()
	}
	return p
}

// Run executes the filter once: read the whole input, parse it, apply the
// transform, and emit the edited document as 2-space-indented JSON.
//
// On any failure nothing is written to the output stream; the diagnostic
// stream gets exactly one error line and the returned error reports the
// same condition to the caller. Parse failures are returned as *ParseError
// with the line "Error decoding JSON: <parser message>" on the diagnostic
// stream.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := io.ReadAll(p.in)
	if err != nil {
		fmt.Fprintf(p.diag, "Error reading input: %v\n", err)
		return fmt.Errorf("read input: %w", err)
	}
	p.log.Debug().Int("bytes", len(data)).Msg("read manifest from stdin")

	doc, err := jsondoc.Parse(data)
	if err != nil {
		fmt.Fprintf(p.diag, "Error decoding JSON: %v\n", err)
		return &ParseError{Err: err}
	}

	notes, err := p.transform(doc)
	if err != nil {
		fmt.Fprintf(p.diag, "Error: %v\n", err)
		return err
	}
	for _, note := range notes {
		fmt.Fprintln(p.diag, note)
	}

	// Buffer the encoding so a serialization problem cannot leave a
	// truncated document on stdout.
	var buf bytes.Buffer
	if err := doc.EncodeIndent(&buf, "", indent); err != nil {
		fmt.Fprintf(p.diag, "Error encoding JSON: %v\n", err)
		return fmt.Errorf("encode manifest: %w", err)
	}
	if _, err := p.out.Write(buf.Bytes()); err != nil {
		fmt.Fprintf(p.diag, "Error writing output: %v\n", err)
		return fmt.Errorf("write output: %w", err)
	}
	p.log.Debug().Int("bytes", buf.Len()).Msg("wrote manifest to stdout")
	return nil
}

// ParseError reports input that is not syntactically valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
