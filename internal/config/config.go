// Package config resolves and parses the user configuration file and falls
// back to the built-in conventional commit schema when none is usable.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-commitizen/pkg/model"
)

// AppName is the directory under the XDG config home holding config.yaml.
const AppName = "go-commitizen"

// FileName is the configuration file looked up inside the app directory.
const FileName = "config.yaml"

// Picker backends.
const (
	BackendFZF    = "fzf"
	BackendSurvey = "survey"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ErrNoConfigDir is returned when neither XDG_CONFIG_HOME nor HOME is set.
var ErrNoConfigDir = errors.New("config: neither XDG_CONFIG_HOME nor HOME is set")

// Picker selects and tunes the interactive backend.
type Picker struct {
	Backend string
	Command string
	Height  int
}

// Config is the resolved configuration of one run.
type Config struct {
	Picker Picker
	Form   model.Form
	// Globals are extra template bindings, such as a sign-off line. Answers
	// shadow a global of the same name.
	Globals map[string]string
	// Source is the file the configuration was read from, empty for the
	// built-in default.
	Source string
}

// Dir is the directory templates may include files from.
func (c Config) Dir() string {
	if c.Source == "" {
		return ""
	}
	return filepath.Dir(c.Source)
}

// Option customises a Loader.
type Option func(*Loader)

// WithPath pins the configuration file, bypassing XDG resolution. A pinned
// file that does not exist is an error.
func WithPath(path string) Option {
	return func(l *Loader) {
		l.path = strings.TrimSpace(path)
	}
}

// WithGetenv sets the environment lookup used for path resolution.
func WithGetenv(getenv func(string) string) Option {
	return func(l *Loader) {
		if getenv != nil {
			l.getenv = getenv
		}
	}
}

// WithLogger attaches a logger for fallback warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader reads the configuration document.
type Loader struct {
	path     string
	getenv   func(string) string
	readFile func(string) ([]byte, error)
	logger   *zap.Logger
}

// NewLoader constructs a Loader. Without WithGetenv the lookup returns empty
// strings, so callers pass os.Getenv explicitly.
func NewLoader(options ...Option) *Loader {
	l := &Loader{
		getenv:   func(string) string { return "" },
		readFile: os.ReadFile,
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Path returns the file the loader reads.
func (l *Loader) Path() (string, error) {
	if l.path != "" {
		return l.path, nil
	}
	return ResolvePath(l.getenv)
}

// ResolvePath returns $XDG_CONFIG_HOME/go-commitizen/config.yaml, or
// $HOME/.config/go-commitizen/config.yaml when XDG_CONFIG_HOME is unset or
// empty.
func ResolvePath(getenv func(string) string) (string, error) {
	if dir := strings.TrimSpace(getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(dir, AppName, FileName), nil
	}
	if home := strings.TrimSpace(getenv("HOME")); home != "" {
		return filepath.Join(home, ".config", AppName, FileName), nil
	}
	return "", ErrNoConfigDir
}

// Load returns the configuration. A missing or unparsable file yields the
// built-in default; a document that parses but declares an invalid form is an
// error.
func (l *Loader) Load() (Config, error) {
	path, err := l.Path()
	if err != nil {
		l.logger.Warn("config path unresolved, using defaults", zap.Error(err))
		return Default(), nil
	}

	data, err := l.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && l.path == "" {
			l.logger.Debug("config file not found, using defaults", zap.String("path", path))
			return Default(), nil
		}
		if l.path != "" {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		l.logger.Warn("config file unreadable, using defaults", zap.String("path", path), zap.Error(err))
		return Default(), nil
	}

	doc, err := parseDocument(data, path)
	if err != nil {
		l.logger.Warn("config file unparsable, using defaults", zap.String("path", path), zap.Error(err))
		return Default(), nil
	}

	cfg, err := normaliseDocument(doc, path)
	if err != nil {
		return Config{}, err
	}
	l.logger.Debug("config loaded", zap.String("path", path), zap.Int("fields", len(cfg.Form.Fields)))
	return cfg, nil
}

type documentFile struct {
	Picker  pickerFile  `json:"picker" yaml:"picker"`
	Message messageFile `json:"message" yaml:"message"`
}

type pickerFile struct {
	Backend string `json:"backend" yaml:"backend"`
	Command string `json:"command" yaml:"command"`
	Height  int    `json:"height" yaml:"height"`
}

type messageFile struct {
	Template string            `json:"template" yaml:"template"`
	Items    []itemFile        `json:"items" yaml:"items"`
	Globals  map[string]string `json:"globals" yaml:"globals"`
}

type itemFile struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Prompt      string         `json:"prompt" yaml:"prompt"`
	Required    bool           `json:"required" yaml:"required"`
	Form        string         `json:"form" yaml:"form"`
	Options     []model.Option `json:"options" yaml:"options"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("config: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
}

func normaliseDocument(doc documentFile, source string) (Config, error) {
	picker, err := normalisePicker(doc.Picker, source)
	if err != nil {
		return Config{}, err
	}

	msg := doc.Message
	globals, err := normaliseGlobals(msg.Globals, source)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Picker: picker, Globals: globals, Source: source}

	switch {
	case len(msg.Items) == 0 && strings.TrimSpace(msg.Template) == "":
		cfg.Form = DefaultForm()
		return cfg, nil
	case len(msg.Items) == 0:
		return Config{}, fmt.Errorf("config: file %s defines a template without items", source)
	case strings.TrimSpace(msg.Template) == "":
		return Config{}, fmt.Errorf("config: file %s defines items without a template", source)
	}

	form := model.Form{
		Fields:   make([]model.Field, 0, len(msg.Items)),
		Template: msg.Template,
	}
	for _, item := range msg.Items {
		field, err := normaliseItem(item)
		if err != nil {
			return Config{}, err
		}
		form.Fields = append(form.Fields, field)
	}
	if err := form.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: file %s: %w", source, err)
	}

	cfg.Form = form
	return cfg, nil
}

func normaliseGlobals(raw map[string]string, source string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		name := strings.TrimSpace(key)
		if !identifier.MatchString(name) {
			return nil, fmt.Errorf("config: file %s global %q is not a valid template identifier", source, key)
		}
		if strings.Contains(value, "\x00") {
			return nil, fmt.Errorf("config: file %s global %q contains a NUL byte", source, name)
		}
		out[name] = value
	}
	return out, nil
}

func normalisePicker(raw pickerFile, source string) (Picker, error) {
	backend := strings.ToLower(strings.TrimSpace(raw.Backend))
	switch backend {
	case "":
		backend = BackendFZF
	case BackendFZF, BackendSurvey:
	default:
		return Picker{}, fmt.Errorf("config: file %s picker backend %q is not one of %s, %s", source, raw.Backend, BackendFZF, BackendSurvey)
	}
	if raw.Height < 0 {
		return Picker{}, fmt.Errorf("config: file %s picker height %d is negative", source, raw.Height)
	}
	return Picker{
		Backend: backend,
		Command: strings.TrimSpace(raw.Command),
		Height:  raw.Height,
	}, nil
}

func normaliseItem(item itemFile) (model.Field, error) {
	spec := model.FieldSpec{
		Name:        strings.TrimSpace(item.Name),
		Description: item.Description,
		Prompt:      item.Prompt,
		Required:    item.Required,
	}

	switch model.Kind(strings.TrimSpace(item.Form)) {
	case model.KindInput:
		return model.InputField{FieldSpec: spec}, nil
	case model.KindSelect:
		if len(item.Options) == 0 {
			return nil, fmt.Errorf("config: select item %s has no options", spec.Name)
		}
		return model.SelectField{
			FieldSpec: spec,
			Options:   append([]model.Option(nil), item.Options...),
		}, nil
	default:
		return nil, &model.UnknownFieldKindError{Field: spec.Name, Kind: item.Form}
	}
}
