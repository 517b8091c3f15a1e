// Package tui holds the interactive prompts used when a command runs with
// --interactive in a terminal.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/modwarden/modwarden/module/mods/types"
)

// PromptInput shows an interactive text input prompt and returns the value.
// Empty answers are rejected when required is set.
func PromptInput(title, description, placeholder string, required bool) (string, error) {
	var value string

	input := huh.NewInput().
		Title(title).
		Description(description).
		Placeholder(placeholder).
		Value(&value)
	if required {
		input = input.Validate(notEmpty)
	}

	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// PromptSelect shows an interactive selection prompt and returns the chosen value.
func PromptSelect(title, description string, options []string) (string, error) {
	var value string

	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description(description).
				Options(opts...).
				Value(&value),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// PromptPlatform asks which registry should win when a file is known to
// both.
func PromptPlatform() (types.Platform, error) {
	value := types.Modrinth

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[types.Platform]().
				Title("Preferred platform").
				Description("Used when a mod is available on more than one platform.").
				Options(platformOptions()...).
				Value(&value),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

func platformOptions() []huh.Option[types.Platform] {
	opts := make([]huh.Option[types.Platform], len(types.Platforms))
	for i, p := range types.Platforms {
		opts[i] = huh.NewOption(p.DisplayName(), p)
	}
	return opts
}

// Confirm asks a yes/no question. Returns true only if the user explicitly
// confirms.
func Confirm(title, description string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}
