package tui

import (
	"context"
	"sort"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/robalobadob/wordscramble/internal/game"
	mock_hint "github.com/robalobadob/wordscramble/internal/mocks/hint"
	"github.com/robalobadob/wordscramble/internal/words"
)

func sorted(s string) string {
	r := []rune(s)
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return string(r)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func newModel(t *testing.T, list ...string) (Model, *mock_hint.MockSource) {
	t.Helper()
	hints := mock_hint.NewMockSource(gomock.NewController(t))
	return New(context.Background(), words.NewListSourceFrom(list), hints), hints
}

func TestModel_GuessFlow(t *testing.T) {
	m, _ := newModel(t, "apple")
	assert.Contains(t, m.View(), "Loading...")

	m, _ = update(t, m, m.nextWord()())
	v := m.sess.Snapshot()
	assert.Equal(t, game.StateReady, v.State)
	assert.Equal(t, "aelpp", sorted(v.Scrambled))

	m = typeText(t, m, "APPLE")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, game.MessageCorrect, m.sess.Snapshot().Message)
	assert.Contains(t, m.View(), game.MessageCorrect)

	m.input.SetValue("appel")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, game.MessageIncorrect, m.sess.Snapshot().Message)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	require.NotNil(t, cmd)
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, "", m.sess.Snapshot().Message)
	assert.Equal(t, game.StateLoading, m.sess.Snapshot().State)
}

func TestModel_EnterBeforeWordIsIgnored(t *testing.T) {
	m, _ := newModel(t, "apple")
	m = typeText(t, m, "apple")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "", m.sess.Snapshot().Message)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, cmd, "no hint lookup without a word")
}

func TestModel_StaleWordDropped(t *testing.T) {
	m, _ := newModel(t, "apple")
	first := m.sess.Begin()
	second := m.sess.Begin()

	m, _ = update(t, m, wordMsg{token: second, word: "newer"})
	m, _ = update(t, m, wordMsg{token: first, word: "older"})
	assert.Equal(t, "eenrw", sorted(m.sess.Snapshot().Scrambled))
}

func TestModel_Hint(t *testing.T) {
	m, hints := newModel(t, "apple")
	hints.EXPECT().Hint(gomock.Any(), "apple").Return("A round fruit.")

	m, _ = update(t, m, m.nextWord()())
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Fetching hint...")

	m, _ = update(t, m, cmd())
	assert.Equal(t, "A round fruit.", m.sess.Snapshot().Hint)
	assert.Contains(t, m.View(), "Hint: A round fruit.")
}

func TestModel_StaleHintDropped(t *testing.T) {
	m, hints := newModel(t, "apple")
	hints.EXPECT().Hint(gomock.Any(), "apple").Return("A round fruit.")

	m, _ = update(t, m, m.nextWord()())
	m, hintCmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, nextCmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m, _ = update(t, m, nextCmd())

	m, _ = update(t, m, hintCmd())
	assert.Equal(t, "", m.sess.Snapshot().Hint)
}

func TestModel_NoHintWhileNextWordLoads(t *testing.T) {
	m, _ := newModel(t, "apple")
	m, _ = update(t, m, m.nextWord()())

	m, nextCmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m, hintCmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, hintCmd, "no lookup for the round being replaced")
	assert.False(t, m.hintLoading)

	m, _ = update(t, m, nextCmd())
	assert.Equal(t, game.StateReady, m.sess.Snapshot().State)
	assert.NotContains(t, m.View(), "Fetching hint...")
}

func TestModel_StaleHintClearsSpinner(t *testing.T) {
	m, hints := newModel(t, "apple")
	hints.EXPECT().Hint(gomock.Any(), "apple").Return("A round fruit.")

	m, _ = update(t, m, m.nextWord()())
	m, hintCmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, nextCmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m, _ = update(t, m, hintCmd())
	m, _ = update(t, m, nextCmd())

	assert.Equal(t, "", m.sess.Snapshot().Hint)
	assert.NotContains(t, m.View(), "Fetching hint...")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel(t, "apple")
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := update(t, m, tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newModel(t, "apple")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Equal(t, 40, m.width)
	assert.NotEmpty(t, m.View())
}
