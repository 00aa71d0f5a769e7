package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/validation"
)

// Format is the encoding of a catalog document.
type Format string

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Loader reads catalog documents. Every document is checked against the
// bundled JSON schema first and then against the struct tags.
type Loader interface {
	LoadItems(path string) (*ItemsFile, error)
	LoadPopulation(path string) (*PopulationFile, error)
	ParseItems(data []byte, format Format) (*ItemsFile, error)
	ParsePopulation(data []byte, format Format) (*PopulationFile, error)
}

type fileLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &fileLoader{
		schemaValidator: validation.NewSchemaValidator(),
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (l *fileLoader) LoadItems(path string) (*ItemsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, path, err)
	}
	return l.parseItems(data, FormatFromPath(path), path)
}

func (l *fileLoader) LoadPopulation(path string) (*PopulationFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, path, err)
	}
	return l.parsePopulation(data, FormatFromPath(path), path)
}

func (l *fileLoader) ParseItems(data []byte, format Format) (*ItemsFile, error) {
	return l.parseItems(data, format, "<items>")
}

func (l *fileLoader) ParsePopulation(data []byte, format Format) (*PopulationFile, error) {
	return l.parsePopulation(data, format, "<population>")
}

func (l *fileLoader) parseItems(data []byte, format Format, source string) (*ItemsFile, error) {
	var file ItemsFile
	if err := l.decode(data, format, source, validation.SchemaItems, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

func (l *fileLoader) parsePopulation(data []byte, format Format, source string) (*PopulationFile, error) {
	var file PopulationFile
	if err := l.decode(data, format, source, validation.SchemaPopulation, &file); err != nil {
		return nil, err
	}
	for _, list := range file.SpawnLists {
		if list.MinAlive > list.MaxAlive {
			return nil, fmt.Errorf(ErrFmtMinAboveMax, domain.ErrInvalidArgument, list.ID, list.MinAlive, list.MaxAlive)
		}
	}
	for _, c := range file.Containers {
		if c.RandomSlots > 0 && len(c.Table) == 0 {
			return nil, fmt.Errorf(ErrFmtRandomSlotsNoTable, domain.ErrInvalidArgument, c.ID)
		}
	}
	return &file, nil
}

// decode normalizes YAML to JSON so both formats share one schema.
func (l *fileLoader) decode(data []byte, format Format, source, schema string, out any) error {
	if format == FormatYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf(ErrMsgParseYAMLFailed, source, err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf(ErrMsgConvertYAMLFailed, source, err)
		}
		data = converted
	}

	if err := l.schemaValidator.ValidateBytes(data, schema); err != nil {
		return fmt.Errorf(ErrMsgSchemaFailed, source, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf(ErrMsgParseFailed, source, err)
	}
	if err := l.validate.Struct(out); err != nil {
		return fmt.Errorf(ErrMsgStructFailed, domain.ErrInvalidArgument, source, err)
	}
	return nil
}
