package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"missiontracker/internal/engine"
	"missiontracker/internal/ui"
)

// CatalogFunc reloads the mission catalog. The board calls it on start and
// on every refresh.
type CatalogFunc func(ctx context.Context) []engine.Mission

type rowKind int

const (
	rowToggle rowKind = iota
	rowLocked
	rowStock
	rowRuins
)

type boardRow struct {
	mission engine.Mission
	kind    rowKind
	key     string
	label   string
	sub     bool
}

type boardModel struct {
	ctx     context.Context
	svc     *engine.Service
	catalog CatalogFunc

	width  int
	height int

	now      time.Time
	missions []engine.Mission
	state    engine.State

	selected     int
	confirmReset bool
	busy         bool

	lastLog string
	loading bool
	err     error
}

type tickMsg time.Time

type loadedMsg struct {
	missions []engine.Mission
	state    engine.State
	res      engine.ReconcileResult
	err      error
}

type mutatedMsg struct {
	state engine.State
	log   string
	err   error
}

func newBoardModel(ctx context.Context, svc *engine.Service, catalog CatalogFunc) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		catalog: catalog,
		now:     svc.Now(),
		loading: true,
		lastLog: "Loading…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m boardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		var missions []engine.Mission
		if m.catalog != nil {
			missions = m.catalog(m.ctx)
		}
		st, res, err := m.svc.Reconcile(m.ctx, missions)
		return loadedMsg{missions: missions, state: st, res: res, err: err}
	}
}

func (m boardModel) mutateCmd(f func() (engine.State, string, error)) tea.Cmd {
	return func() tea.Msg {
		st, log, err := f()
		return mutatedMsg{state: st, log: log, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.now = m.svc.Now()
		m.clampSelection()
		return m, tick()
	case loadedMsg:
		m.loading = false
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.missions = msg.missions
		m.state = msg.state
		m.now = m.svc.Now()
		m.clampSelection()
		m.lastLog = refreshLog(m.now, msg.res)
		return m, nil
	case mutatedMsg:
		m.busy = false
		if msg.err != nil {
			m.lastLog = ui.IconError + " " + msg.err.Error()
			return m, nil
		}
		m.state = msg.state
		m.lastLog = msg.log
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.confirmReset {
		m.confirmReset = false
		if key != "y" && key != "Y" {
			m.lastLog = "Reset cancelled."
			return m, nil
		}
		m.busy = true
		m.lastLog = "Resetting…"
		return m, m.mutateCmd(func() (engine.State, string, error) {
			st, err := m.svc.ResetAll(m.ctx)
			return st, ui.IconReset + " All progress reset.", err
		})
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.rows())-1 {
			m.selected++
		}
		return m, nil
	}

	if m.busy || m.loading {
		return m, nil
	}

	switch key {
	case "r":
		m.loading = true
		m.busy = true
		m.lastLog = "Refreshing…"
		return m, m.refreshCmd()
	case "R":
		m.confirmReset = true
		m.lastLog = ui.Warn.Render(ui.IconWarn + " Reset ALL progress? (y/N)")
		return m, nil
	case "u":
		m.busy = true
		return m, m.mutateCmd(func() (engine.State, string, error) {
			st, undone, err := m.svc.Undo(m.ctx)
			if err != nil || undone == "" {
				return st, "Nothing to undo.", err
			}
			return st, ui.IconUndo + " Undid " + undone, nil
		})
	case " ", "enter", "x":
		return m.toggleSelected()
	case "+", "right", "l":
		return m.adjustSelected(1)
	case "-", "left", "h":
		return m.adjustSelected(-1)
	case "]":
		return m.adjustSelected(10)
	case "[":
		return m.adjustSelected(-10)
	}
	return m, nil
}

func (m boardModel) toggleSelected() (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}
	switch row.kind {
	case rowLocked:
		m.lastLog = ui.IconLocked + " " + engine.LockedError{Key: row.key}.Error()
		return m, nil
	case rowToggle:
	default:
		m.lastLog = "Use +/- to adjust counters."
		return m, nil
	}
	m.busy = true
	return m, m.mutateCmd(func() (engine.State, string, error) {
		st, err := m.svc.Toggle(m.ctx, row.key)
		if err != nil {
			return st, "", err
		}
		verb := "Cleared"
		if st.IsCompleted(row.key) {
			verb = "Completed"
		}
		return st, fmt.Sprintf("%s %s", verb, row.key), nil
	})
}

func (m boardModel) adjustSelected(delta int) (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}
	switch row.kind {
	case rowStock:
		r := row.mission.Stock.Resource
		v := m.state.Stock(r) + delta
		m.busy = true
		return m, m.mutateCmd(func() (engine.State, string, error) {
			st, err := m.svc.SetStock(m.ctx, r, v)
			return st, fmt.Sprintf("%s %s keys: %d", ui.IconKey, r, st.Stock(r)), err
		})
	case rowRuins:
		v := m.state.RuinsFloor + delta
		m.busy = true
		return m, m.mutateCmd(func() (engine.State, string, error) {
			st, err := m.svc.SetRuinsFloor(m.ctx, v)
			return st, fmt.Sprintf("%s floor: %d", ui.IconRuins, st.RuinsFloor), err
		})
	}
	return m, nil
}

// rows lists the selectable rows of the missions eligible right now, daily
// first, then weekly, then other.
func (m boardModel) rows() []boardRow {
	visible := engine.VisibleMissions(m.missions, m.now)
	var out []boardRow
	for _, c := range []engine.Category{engine.CategoryDaily, engine.CategoryWeekly, engine.CategoryOther} {
		for _, ms := range visible {
			if ms.Category == c {
				out = append(out, missionRows(ms)...)
			}
		}
	}
	return out
}

func missionRows(ms engine.Mission) []boardRow {
	switch ms.EffectiveKind() {
	case engine.KindStock:
		return []boardRow{{mission: ms, kind: rowStock, key: ms.ID, label: ms.Name}}
	case engine.KindRuins:
		return []boardRow{{mission: ms, kind: rowRuins, key: ms.ID, label: ms.Name}}
	}
	if len(ms.SubItems) == 0 {
		return []boardRow{{mission: ms, kind: rowToggle, key: ms.ID, label: ms.Name}}
	}

	var out []boardRow
	switch ms.EffectiveKind() {
	case engine.KindRaid:
		for _, sub := range ms.SubItems {
			for _, d := range engine.RaidDifficulties {
				kind := rowToggle
				if ms.CellLocked(sub.ID, d) {
					kind = rowLocked
				}
				out = append(out, boardRow{
					mission: ms,
					kind:    kind,
					key:     engine.CellKey(ms.ID, sub.ID, d),
					label:   fmt.Sprintf("%s · %s", sub.Name, d),
					sub:     true,
				})
			}
		}
	case engine.KindStore:
		for _, sub := range ms.SubItems {
			out = append(out, boardRow{mission: ms, kind: rowToggle, key: engine.SubKey(ms.ID, sub.ID), label: sub.Name, sub: true})
		}
	default:
		out = append(out, boardRow{mission: ms, kind: rowToggle, key: ms.ID, label: ms.Name})
	}
	return out
}

func (m boardModel) selectedRow() (boardRow, bool) {
	rows := m.rows()
	if m.selected < 0 || m.selected >= len(rows) {
		return boardRow{}, false
	}
	return rows[m.selected], true
}

// clampSelection keeps the cursor on a row after events appear or expire.
func (m *boardModel) clampSelection() {
	n := len(m.rows())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func refreshLog(now time.Time, res engine.ReconcileResult) string {
	var parts []string
	if n := len(res.Cleared); n > 0 {
		parts = append(parts, fmt.Sprintf("%d reset", n))
	}
	if res.Increments > 0 {
		parts = append(parts, fmt.Sprintf("+%d keys", res.Increments))
	}
	msg := fmt.Sprintf("Refreshed at %s.", now.Format("15:04:05"))
	if len(parts) > 0 {
		msg += " " + strings.Join(parts, ", ") + "."
	}
	return msg
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	if m.loading && len(m.missions) == 0 {
		b.WriteString("Loading…\n")
	} else {
		b.WriteString(m.renderMain())
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	sch := m.svc.Schedule()
	lines := []string{
		ui.Heading(ui.IconSparkle, "Mission Tracker") + "  " + ui.Muted.Render(m.now.Format("Mon 2006-01-02 15:04:05")),
		fmt.Sprintf("%s daily %s   weekly %s   bi-weekly %s",
			ui.IconClock,
			ui.Key.Render(ui.Countdown(engine.NextDailyReset(m.now).Sub(m.now))),
			ui.Key.Render(ui.Countdown(engine.NextWeeklyReset(m.now).Sub(m.now))),
			ui.Key.Render(ui.Countdown(engine.NextBiWeeklyReset(m.now, sch.Anchor).Sub(m.now))),
		),
	}
	visible := engine.VisibleMissions(m.missions, m.now)
	for _, c := range []engine.Category{engine.CategoryDaily, engine.CategoryWeekly} {
		p := engine.CategoryProgress(visible, m.state, c)
		lines = append(lines, fmt.Sprintf("%-10s %s", ui.CategoryTitle(c), ui.ProgressBar(p, 20)))
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	rows := m.rows()
	if len(rows) == 0 {
		return "(no missions)\n"
	}

	var out []string
	var lastMission string
	var lastCat engine.Category
	for i, row := range rows {
		if row.mission.Category != lastCat {
			lastCat = row.mission.Category
			out = append(out, "", ui.H2.Render(ui.CategoryTitle(lastCat)))
		}
		if row.sub && row.mission.ID != lastMission {
			out = append(out, "  "+missionTitle(row.mission))
		}
		lastMission = row.mission.ID

		line := m.renderRow(row)
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n") + "\n"
}

func (m boardModel) renderRow(row boardRow) string {
	indent := ""
	if row.sub {
		indent = "    ↳ "
	}
	switch row.kind {
	case rowLocked:
		return indent + ui.IconLocked + " " + ui.Muted.Render(row.label)
	case rowStock:
		return fmt.Sprintf("%s %s  %s", row.mission.Image, row.label, ui.Gauge(m.state.Stock(row.mission.Stock.Resource), engine.MaxKeys))
	case rowRuins:
		return fmt.Sprintf("%s %s  floor %s", row.mission.Image, row.label, ui.Gold.Render(fmt.Sprintf("%d/%d", m.state.RuinsFloor, engine.MaxRuinsFloor)))
	}
	if row.sub {
		return indent + ui.Check(m.state.IsCompleted(row.key)) + " " + row.label
	}
	return ui.Check(m.state.IsCompleted(row.key)) + " " + missionTitle(row.mission)
}

func missionTitle(ms engine.Mission) string {
	title := strings.TrimSpace(ms.Image + " " + ms.Name)
	if w := ms.Activation.Window; w != nil {
		title += " " + ui.Muted.Render("("+w.String()+")")
	}
	if ms.Description != "" {
		title += " " + ui.Muted.Render("· "+ms.Description)
	}
	return title
}

func (m boardModel) renderFooter() string {
	help := ui.Muted.Render("↑/↓ move · space toggle · +/- adjust · [/] ±10 floor · u undo · r refresh · R reset · q quit")
	return "\n" + help + "\n" + m.lastLog
}
