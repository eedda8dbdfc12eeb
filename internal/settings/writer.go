package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/deskdev/deskdev-setup/internal/common"
	"github.com/deskdev/deskdev-setup/internal/filex"
	"github.com/go-playground/validator/v10"
)

// FilePerm is the mode of a newly created configuration file. An existing
// file keeps its own mode.
const FilePerm os.FileMode = 0o644

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks doc against its field constraints.
func Validate(doc Document) error {
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidDocument, err)
	}
	return nil
}

// Marshal renders doc as two-space indented JSON without a trailing newline.
func Marshal(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Write replaces the file at path with doc. Nothing from an existing file is
// kept. The parent directory is created when missing and the replacement is
// atomic.
func Write(path string, doc Document) error {
	if err := Validate(doc); err != nil {
		return err
	}

	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", common.ErrConfigWrite, err)
	}

	if _, err := filex.EnsureParentDir(path); err != nil {
		return err
	}

	if err := filex.WriteFileAtomic(path, data, FilePerm); err != nil {
		return fmt.Errorf("%w: %w", common.ErrConfigWrite, err)
	}
	return nil
}

// Read parses the document stored at path.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &doc, nil
}
