// internal/tui/model.go
//
// Terminal front end for the scramble game.
// Keys:
//   - enter   → check the typed guess
//   - ctrl+n  → next word
//   - tab     → fetch a hint
//   - esc / ctrl+c → quit
//
// Word and hint lookups run as tea.Cmds; their results carry the round token
// they were issued for and are dropped if a newer round has begun.

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/hint"
	"github.com/robalobadob/wordscramble/internal/words"
)

type wordMsg struct {
	token uint64
	word  string
}

type hintMsg struct {
	token uint64
	hint  string
}

// Model is the bubbletea model for one local game session.
type Model struct {
	ctx   context.Context
	words words.Source
	hints hint.Source

	sess        *game.Session
	input       textinput.Model
	hintLoading bool
	hintToken   uint64
	width       int
}

// New builds a model; the first word is requested by Init.
func New(ctx context.Context, w words.Source, h hint.Source) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter your guess"
	ti.CharLimit = 64
	ti.Width = 30
	ti.Focus()

	return Model{
		ctx:   ctx,
		words: w,
		hints: h,
		sess:  game.NewSession(uuid.NewString()),
		input: ti,
	}
}

// Run starts the interactive program and blocks until the player quits.
func Run(ctx context.Context, w words.Source, h hint.Source, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(ctx, w, h), opts...).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.nextWord())
}

// nextWord begins a new round and returns the lookup for it.
func (m Model) nextWord() tea.Cmd {
	token := m.sess.Begin()
	return func() tea.Msg {
		return wordMsg{token: token, word: m.words.Random(m.ctx)}
	}
}

func (m Model) fetchHint(token uint64, word string) tea.Cmd {
	return func() tea.Msg {
		return hintMsg{token: token, hint: m.hints.Hint(m.ctx, word)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case wordMsg:
		if _, _, ok := m.sess.Start(msg.token, msg.word); !ok {
			log.Debug().Uint64("token", msg.token).Msg("discarding stale word")
		}
		return m, nil

	case hintMsg:
		if msg.token == m.hintToken {
			m.hintLoading = false
		}
		if _, ok := m.sess.SetHint(msg.token, msg.hint); !ok {
			log.Debug().Uint64("token", msg.token).Msg("discarding stale hint")
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if _, err := m.sess.Guess(m.input.Value()); err != nil {
				log.Debug().Err(err).Msg("check ignored")
			}
			return m, nil

		case tea.KeyCtrlN:
			m.input.Reset()
			m.hintLoading = false
			return m, m.nextWord()

		case tea.KeyTab:
			token, word, err := m.sess.HintTarget()
			if err != nil {
				return m, nil
			}
			m.hintLoading = true
			m.hintToken = token
			return m, m.fetchHint(token, word)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	v := m.sess.Snapshot()

	var b strings.Builder
	b.WriteString(styleTitle.Render("Word Scramble Game"))
	b.WriteString("\n")

	switch {
	case v.Scrambled == "":
		b.WriteString(styleScrambled.Render("Loading..."))
	default:
		b.WriteString(styleScrambled.Render(strings.ToUpper(v.Scrambled)))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch v.State {
	case game.StateCorrect:
		b.WriteString(styleCorrect.Render(v.Message))
	case game.StateIncorrect:
		b.WriteString(styleIncorrect.Render(v.Message))
	}
	b.WriteString("\n")

	switch {
	case m.hintLoading:
		b.WriteString(styleSubtle.Render("Fetching hint..."))
	case v.Hint != "":
		b.WriteString(styleHint.Render("Hint: " + v.Hint))
	}
	b.WriteString("\n\n")
	b.WriteString(styleSubtle.Render("enter check • ctrl+n next word • tab hint • esc quit"))

	card := styleCard
	if m.width > 0 && m.width < 60 {
		card = card.Width(m.width - 4)
	}
	return card.Render(b.String()) + "\n"
}
