package inspect

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/AaronKutch/awint/bits"
	"github.com/AaronKutch/awint/config"
)

// TUI represents the text user interface for the inspector
type TUI struct {
	// Core components
	Session *Session
	App     *tview.Application

	// Layout containers
	MainLayout *tview.Flex
	TopPanel   *tview.Flex

	// View panels
	OutputView   *tview.TextView
	BitsView     *tview.TextView
	HistoryView  *tview.TextView
	CommandInput *tview.InputField

	// State
	LastResult *bits.Ext
	showHist   bool
	showBits   bool
}

// NewTUI creates a new text user interface around a session
func NewTUI(session *Session, cfg *config.Config) *TUI {
	tui := &TUI{
		Session:  session,
		App:      tview.NewApplication(),
		showHist: cfg.Tui.ShowHistory,
		showBits: cfg.Tui.ShowBits,
	}

	tui.initializeViews()
	tui.buildLayout()
	tui.setupKeyBindings()

	return tui
}

// initializeViews creates all the view panels
func (t *TUI) initializeViews() {
	// Output View: evaluated expressions and their values
	t.OutputView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Results ")

	// Bits View: the bit grid of the last result
	t.BitsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.BitsView.SetBorder(true).SetTitle(" Bits ")

	// History View
	t.HistoryView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.HistoryView.SetBorder(true).SetTitle(" History ")

	// Command Input
	t.CommandInput = tview.NewInputField().
		SetLabel(fmt.Sprintf("[w%d] > ", t.Session.Width)).
		SetFieldWidth(0)
	t.CommandInput.SetBorder(true)
	t.CommandInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			t.executeCommand(t.CommandInput.GetText())
			t.CommandInput.SetText("")
		}
	})
}

// buildLayout arranges the panels
func (t *TUI) buildLayout() {
	t.TopPanel = tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(t.OutputView, 0, 2, false)
	if t.showBits {
		t.TopPanel.AddItem(t.BitsView, 0, 1, false)
	}
	if t.showHist {
		t.TopPanel.AddItem(t.HistoryView, 0, 1, false)
	}

	t.MainLayout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.TopPanel, 0, 1, false).
		AddItem(t.CommandInput, 3, 0, true)
}

// setupKeyBindings wires history navigation and exit keys
func (t *TUI) setupKeyBindings() {
	t.CommandInput.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			if prev := t.Session.History.Previous(); prev != "" {
				t.CommandInput.SetText(prev)
			}
			return nil
		case tcell.KeyDown:
			t.CommandInput.SetText(t.Session.History.Next())
			return nil
		case tcell.KeyCtrlC, tcell.KeyEscape:
			t.App.Stop()
			return nil
		}
		return event
	})
}

// executeCommand runs one line through the session and refreshes panels
func (t *TUI) executeCommand(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}
	if input == "quit" || input == "exit" {
		t.App.Stop()
		return
	}

	out, err := t.Session.Eval(input)
	if err != nil {
		fmt.Fprintf(t.OutputView, "[yellow]> %s[-]\n[red]error: %v[-]\n", tview.Escape(input), err)
	} else {
		fmt.Fprintf(t.OutputView, "[yellow]> %s[-]\n%s\n", tview.Escape(input), tview.Escape(out))
		if v, verr := t.Session.evalExpr(input); verr == nil {
			t.LastResult = v
		}
	}
	t.OutputView.ScrollToEnd()
	t.CommandInput.SetLabel(fmt.Sprintf("[w%d] > ", t.Session.Width))
	t.updateBitsView()
	t.updateHistoryView()
}

// updateBitsView renders the bit grid of the last result, high bit
// first, eight groups of eight per line
func (t *TUI) updateBitsView() {
	if !t.showBits {
		return
	}
	t.BitsView.Clear()
	if t.LastResult == nil {
		fmt.Fprint(t.BitsView, "no result yet")
		return
	}
	b := t.LastResult.Bits()
	var sb strings.Builder
	for i := b.Bw() - 1; i >= 0; i-- {
		set, _ := b.Get(i)
		if set {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if i != 0 {
			switch {
			case i%64 == 0:
				sb.WriteByte('\n')
			case i%8 == 0:
				sb.WriteByte(' ')
			}
		}
	}
	fmt.Fprintf(t.BitsView, "bit %d..0\n%s\n", b.Bw()-1, sb.String())
}

// updateHistoryView re-renders the command history, newest last
func (t *TUI) updateHistoryView() {
	if !t.showHist {
		return
	}
	t.HistoryView.Clear()
	for _, cmd := range t.Session.History.GetAll() {
		fmt.Fprintf(t.HistoryView, "%s\n", tview.Escape(cmd))
	}
	t.HistoryView.ScrollToEnd()
}

// Run starts the interface and blocks until exit
func (t *TUI) Run() error {
	fmt.Fprint(t.OutputView, "awint inspector; type help for commands, quit to exit\n")
	return t.App.SetRoot(t.MainLayout, true).Run()
}
