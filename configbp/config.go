// Package configbp parses YAML configuration files into validated structs.
package configbp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/probekit/customprobe/internal/limitopen"
	"github.com/probekit/customprobe/log"
)

type envsubstReader struct {
	buffer bytes.Buffer
	lines  *bufio.Scanner
}

func (r *envsubstReader) Read(buf []byte) (int, error) {
	if r.buffer.Len() > 0 {
		return r.buffer.Read(buf)
	}
	if !r.lines.Scan() {
		if err := r.lines.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	r.buffer.WriteString(os.ExpandEnv(r.lines.Text()))
	r.buffer.WriteString("\n")
	return r.buffer.Read(buf)
}

// ParseStrictFile parses and validates configuration from the file at the
// given path.
//
// Only .yaml and .yml files are supported.
// Environment variables (e.g. $FOO and ${FOO}) are substituted before parsing.
func ParseStrictFile(path string, ptr interface{}) error {
	f, _, err := limitopen.Open(path)
	if err != nil {
		return err // contains filename
	}
	defer f.Close()

	switch ext := filepath.Ext(path); strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseStrictYAML(f, ptr)
	default:
		return fmt.Errorf("configbp: unsupported config extension %q", ext)
	}
}

// ParseStrictYAML parses YAML read from reader into ptr, then validates it.
//
// Unknown fields are an error.
// Environment variables (e.g. $FOO and ${FOO}) are substituted before parsing.
// An empty document leaves ptr untouched, so defaults set before the call
// survive.
func ParseStrictYAML(reader io.Reader, ptr interface{}) error {
	reader = &envsubstReader{
		lines: bufio.NewScanner(reader),
	}
	var debugOutput strings.Builder
	if log.With().Desugar().Core().Enabled(zap.DebugLevel) {
		reader = io.TeeReader(reader, &debugOutput)
	}

	dec := yaml.NewDecoder(reader)
	dec.SetStrict(true)
	if err := dec.Decode(ptr); err != nil && err != io.EOF {
		if debugOutput.Len() > 0 {
			log.Debugf("Partial configuration for decoding into %T: (error: %s)\n%s", ptr, err, debugOutput.String())
		}
		return fmt.Errorf("configbp: parsing YAML into %T: %w", ptr, err)
	}
	if debugOutput.Len() > 0 {
		log.Debugf("Parsed configuration as %T:\n%s", ptr, debugOutput.String())
	}
	return Validate(ptr)
}

var validate = validator.New()

// Validate checks ptr against its `validate` struct tags.
func Validate(ptr interface{}) error {
	if err := validate.Struct(ptr); err != nil {
		return fmt.Errorf("configbp: invalid %T: %w", ptr, err)
	}
	return nil
}
