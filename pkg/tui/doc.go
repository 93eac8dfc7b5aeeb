// Package tui drives a form engine from the terminal. A Session prompts for
// each field of a schema.Definition through a PromptDriver (survey by
// default), forwards answers to the engine's change and blur handlers and
// submits the form, re-prompting fields that are still invalid.
package tui
