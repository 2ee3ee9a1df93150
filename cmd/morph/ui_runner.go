package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"morph/internal/driver"
	"morph/internal/engine"
	"morph/internal/ui"
)

type batchOutcome struct {
	results []driver.FileResult
	err     error
}

func runTransformDirWithUI(ctx context.Context, title string, files []string, eng engine.Engine, dir string, opts driver.DirOptions) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.TransformDir(ctx, eng, dir, optsCopy)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
