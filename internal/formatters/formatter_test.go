// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"testing"

	"clause-check/internal/compare"
)

type fakeFormatter struct{ name string }

func (f *fakeFormatter) Format(results []compare.Result, options FormatterOptions) (string, error) {
	return f.name, nil
}
func (f *fakeFormatter) Name() string          { return f.name }
func (f *fakeFormatter) Description() string   { return "test formatter" }
func (f *fakeFormatter) FileExtension() string { return ".fake" }

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&fakeFormatter{name: "fake"})

	if _, exists := registry.Get("fake"); !exists {
		t.Error("expected registered formatter to be found")
	}
	if _, exists := registry.Get("absent"); exists {
		t.Error("expected unregistered formatter to be absent")
	}
	if names := registry.List(); len(names) != 1 || names[0] != "fake" {
		t.Errorf("unexpected list %v", names)
	}
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	registry := NewRegistry()
	first := &fakeFormatter{name: "dup"}
	second := &fakeFormatter{name: "dup"}
	registry.Register(first)
	registry.Register(second)

	got, _ := registry.Get("dup")
	if got != second {
		t.Error("expected second registration to win")
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("short body", 80); got != "short body" {
		t.Errorf("unexpected excerpt %q", got)
	}
	if got := Excerpt("line\none\n  two   three", 80); got != "line one two three" {
		t.Errorf("expected whitespace collapsed, got %q", got)
	}
	if got := Excerpt("abcdefgh", 4); got != "abcd…" {
		t.Errorf("expected rune truncation with ellipsis, got %q", got)
	}
}
