package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/search"
)

// fileValidate checks decoded files. Initialized in init() with the
// strategy and tiebreak tags.
var fileValidate *validator.Validate

func init() {
	fileValidate = validator.New()
	_ = fileValidate.RegisterValidation("strategy", validateStrategy)
	_ = fileValidate.RegisterValidation("tiebreak", validateTieBreak)
}

func validateStrategy(fl validator.FieldLevel) bool {
	_, err := search.ParseStrategy(fl.Field().String())
	return err == nil
}

func validateTieBreak(fl validator.FieldLevel) bool {
	_, err := frontier.ParseTieBreak(fl.Field().String())
	return err == nil
}

// Validate checks the struct tags of f.
func (f *File) Validate() error {
	return fileValidate.Struct(f)
}

// Load reads, validates and builds the problem file at path.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load problem file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse decodes, validates and builds a problem from YAML data.
func Parse(data []byte) (*Problem, error) {
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return f.Build()
}

// Decode reads one YAML document into a File and validates it. Unknown
// keys are rejected.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidFile)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return &f, nil
}
