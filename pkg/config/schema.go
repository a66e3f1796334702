package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://funcspace.dev/schema/config.json"

func compileSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
}

// ValidateFile checks the raw document at path against the configuration
// schema, then decodes it and checks its values. Unknown keys and
// mistyped values are reported here, whereas Load ignores them.
func ValidateFile(path string) error {
	k, err := loadKoanf(path)
	if err != nil {
		return err
	}

	// Round-trip through JSON so numbers reach the validator in the
	// representation it expects.
	raw, err := json.Marshal(k.Raw())
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	sch, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrInvalid, err)
	}

	_, err = Load(path)
	return err
}
