// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package aggregator collects configuration sources and merges them into a
// cached store.
//
// Sources are registered as deferred jobs and loaded only by
// [Aggregator.Build], one after the other in registration order (later
// sources override earlier leaf values, sibling keys are kept):
//
//	cfg, err := aggregator.New().
//		AddYAMLFile("config.yaml").
//		AddDotEnvFile(".env", aggregator.WithNesting()).
//		AddEnvVars(aggregator.WithNamespace("env"), aggregator.WithNesting()).
//		Build()
//
// Each job may carry a namespace (wrap the source under one key), nesting
// (expand FOO__BAR keys into trees, object and dotenv sources only) and a
// validator that rejects the whole build.
package aggregator
