// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader reads configuration sources into plain mappings.
//
// Parsing is delegated to the format libraries; this package only reads
// the files and normalises the parsed output so every loader returns a
// [models.Mapping] made of map[string]any, []any and scalars:
//   - JSON with comments and trailing commas: tidwall/jsonc + encoding/json
//   - YAML: gopkg.in/yaml.v3
//   - dotenv KEY=VALUE files: joho/godotenv
//   - the process environment: caarlos0/env
package loader
