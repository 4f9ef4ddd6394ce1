package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", km.Up},
		{"Down", km.Down},
		{"Toggle", km.Toggle},
		{"Select", km.Select},
		{"Back", km.Back},
		{"ThumbUp", km.ThumbUp},
		{"ThumbDown", km.ThumbDown},
		{"Tooltip", km.Tooltip},
		{"Quit", km.Quit},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Key == "" {
				t.Errorf("expected %s binding to have help text", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	hasQ := false
	hasCtrlC := false
	for _, k := range keys {
		switch k {
		case "q":
			hasQ = true
		case "ctrl+c":
			hasCtrlC = true
		}
	}

	if !hasQ {
		t.Error("expected Quit binding to include 'q'")
	}
	if !hasCtrlC {
		t.Error("expected Quit binding to include 'ctrl+c'")
	}
}

func TestStepHelp(t *testing.T) {
	km := DefaultKeyMap()
	h := stepHelp{km.Select, km.Quit}
	if len(h.ShortHelp()) != 2 {
		t.Errorf("ShortHelp() = %d bindings", len(h.ShortHelp()))
	}
	if full := h.FullHelp(); len(full) != 1 || len(full[0]) != 2 {
		t.Errorf("FullHelp() = %v", full)
	}
}
