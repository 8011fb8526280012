// Package manifest declares commands in a TOML file, and registers them with handlers on a [cli.CommandSet].
//
//	[[command]]
//	signature = "greet {name? : Who to greet} {--y|yell}"
//	usage = "Greets someone"
//	aliases = ["hi"]
//	handler = "greet"
//
// The handler key is optional, and defaults to the command name from the signature.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/saylorsolutions/cmdsig/cli"
	"github.com/saylorsolutions/cmdsig/signature"
)

var (
	ErrManifest       = errors.New("invalid manifest")
	ErrMissingHandler = errors.New("missing handler")
)

// Manifest is a list of command declarations.
type Manifest struct {
	Commands []Command `toml:"command"`
}

// Command declares a single command.
type Command struct {
	Signature string   `toml:"signature"`
	Usage     string   `toml:"usage"`
	Aliases   []string `toml:"aliases"`
	Handler   string   `toml:"handler"`
}

// Decode reads a [Manifest] from r, and validates every signature in it.
// All invalid signatures are reported together.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load opens and decodes the manifest file at path.
func Load(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return Decode(file)
}

// Validate parses every signature, and returns all problems joined together.
func (m *Manifest) Validate() error {
	var errs []error
	for i, cmd := range m.Commands {
		if _, err := cmd.handlerKey(); err != nil {
			errs = append(errs, fmt.Errorf("%w: command %d: %w", ErrManifest, i, err))
		}
	}
	return errors.Join(errs...)
}

func (c Command) handlerKey() (string, error) {
	sig, err := signature.Parse(c.Signature)
	if err != nil {
		return "", err
	}
	if len(c.Handler) > 0 {
		return c.Handler, nil
	}
	if len(sig.Name) == 0 {
		return "", fmt.Errorf("signature %q has no command name", c.Signature)
	}
	return sig.Name, nil
}

// Register adds every declared command to set, using the named handler from handlers.
// Registration stops at the first command that can't be registered.
func (m *Manifest) Register(set *cli.CommandSet, handlers map[string]cli.CommandFunc) error {
	for i, decl := range m.Commands {
		key, err := decl.handlerKey()
		if err != nil {
			return fmt.Errorf("%w: command %d: %w", ErrManifest, i, err)
		}
		handler, ok := handlers[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingHandler, key)
		}
		cmd, err := set.Register(decl.Signature, decl.Usage, decl.Aliases...)
		if err != nil {
			return fmt.Errorf("%w: command %d: %w", ErrManifest, i, err)
		}
		cmd.Does(handler)
	}
	return nil
}
