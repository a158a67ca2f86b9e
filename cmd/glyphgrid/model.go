package main

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/glyphgrid/editor"
)

// osClipboard adapts the system clipboard to editor.Clipboard.
type osClipboard struct{}

func (osClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (osClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

type model struct {
	editor editor.Model
	help   help.Model
	keys   editor.KeyMap
	log    *logrus.Logger
}

func newModel(opt options, log *logrus.Logger) model {
	keys := editor.DefaultKeyMap()
	cfg := editor.Config{
		Width:        opt.width(),
		Height:       opt.height,
		Text:         opt.text,
		Zoom:         opt.zoom,
		ShowOffsets:  opt.offsets,
		Style:        editor.DefaultStyle(),
		KeyMap:       keys,
		Clipboard:    osClipboard{},
		MutationMode: editor.EmitIntentsAndMutate,
		OnIntent:     logIntents(log),
		OnChange: func(ev editor.ChangeEvent) {
			log.WithFields(logrus.Fields{
				"version": ev.Version,
				"width":   ev.Width,
			}).Debug("glyph changed")
		},
	}
	m := model{
		editor: editor.New(cfg),
		help:   help.New(),
		keys:   keys,
		log:    log,
	}
	if err := m.editor.Err(); err != nil {
		log.WithError(err).Warn("initial import failed")
	}
	return m
}

// logIntents records every intent and lets the editor apply it.
func logIntents(log *logrus.Logger) func(editor.IntentBatch) editor.IntentDecision {
	return func(batch editor.IntentBatch) editor.IntentDecision {
		for _, in := range batch.Intents {
			entry := log.WithFields(logrus.Fields{
				"intent":  in.Kind.String(),
				"version": in.Before.Version,
			})
			switch p := in.Payload.(type) {
			case editor.ExportPayload:
				entry.WithField("text", p.Text).Info("export")
			case editor.ImportPayload:
				entry.WithField("text", p.Text).Info("import")
			case editor.SetWidthPayload:
				entry.WithField("to", p.Width).Info("set width")
			default:
				entry.Debug("intent")
			}
		}
		return editor.IntentDecision{ApplyLocally: true}
	}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, editorHeight(msg.Height))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	prevErr := m.editor.Err()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if err := m.editor.Err(); err != nil && err != prevErr {
		m.log.WithError(err).Warn(m.editor.Status())
	}
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + m.help.View(m.keys)
}

func editorHeight(total int) int {
	h := total - 1
	if h < 0 {
		return 0
	}
	return h
}
