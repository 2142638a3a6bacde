package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a masked text input prompt.
type InputConfig struct {
	Message     string
	Default     string
	Help        string
	Placeholder string
	// Transform rewrites the answer before it is echoed back, so the user
	// sees the masked value rather than the raw keystrokes.
	Transform func(string) string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// PromptDriver abstracts the actual TUI implementation so render logic can be
// tested without a real terminal and callers can swap implementations.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out io.Writer
}

func newSurveyDriver() (PromptDriver, error) {
	return &surveyDriver{out: os.Stdout}, nil
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	message := cfg.Message
	if cfg.Placeholder != "" {
		message = fmt.Sprintf("%s %s", message, cfg.Placeholder)
	}

	question := &survey.Question{
		Prompt: &survey.Input{
			Message: message,
			Help:    cfg.Help,
			Default: cfg.Default,
		},
	}
	if cfg.Validator != nil {
		validator := cfg.Validator
		question.Validate = func(ans any) error {
			s, _ := ans.(string)
			return validator(s)
		}
	}
	if cfg.Transform != nil {
		question.Transform = survey.TransformString(cfg.Transform)
	}

	var out string
	if err := survey.Ask([]*survey.Question{question}, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, strings.TrimRight(msg, "\n"))
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
