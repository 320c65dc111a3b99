// Package config loads session configuration from YAML or TOML files.
//
//	cfg, err := config.Load("assistant.yaml")
//	if err != nil { ... }
//	sess, err := session.New(cfg)
//
// A minimal YAML config:
//
//	system_prompt: You are a helpful coding assistant.
//	max_tokens: 64000
//
// and the TOML equivalent:
//
//	system_prompt = "You are a helpful coding assistant."
//	max_tokens = 64000
//
// All other fields are optional and default as documented on
// session.Config. Loaded configs are validated before being returned.
//
// Schema emits a JSON Schema for the file format, so editors can validate
// and complete config files:
//
//	data, _ := config.SchemaJSON()
//	os.WriteFile("contextkit.schema.json", data, 0o644)
package config
