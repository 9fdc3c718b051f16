package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halcyard/tempo"
	"github.com/halcyard/tempo/internal/catalog"
)

// msgCatalogReload signals that the catalog file changed on disk.
type msgCatalogReload struct{}

// Model is the interactive converter dashboard: a value typed on the
// active scale is shown live on every other scale, with a civil
// breakdown and the epoch catalog underneath.
type Model struct {
	Input    textinput.Model
	ScaleIdx int // index into scaleRows of the scale the input is on
	Width    int

	catalogPath string
	epochs      []catalog.Entry
	reloads     <-chan struct{}

	err error
}

// NewModel builds the dashboard seeded with the J2000.0 epoch.
func NewModel(catalogPath string, reloads <-chan struct{}) Model {
	ti := textinput.New()
	ti.Prompt = "▸ "
	ti.Placeholder = "value on the active scale"
	ti.CharLimit = 64
	ti.SetValue(strconv.FormatFloat(tempo.J2000().Value(), 'f', -1, 64))
	ti.Focus()

	m := Model{
		Input:       ti,
		catalogPath: catalogPath,
		reloads:     reloads,
	}
	m.loadCatalog()
	return m
}

func (m *Model) loadCatalog() {
	cat, err := catalog.Load(m.catalogPath)
	if err != nil {
		m.err = err
		return
	}
	m.epochs = cat.Epochs
}

// waitForReload blocks on the watcher channel and resurfaces the signal
// as a message. Re-issued after every reload so the stream never stalls.
func waitForReload(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		<-ch
		return msgCatalogReload{}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForReload(m.reloads))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		return m, nil

	case msgCatalogReload:
		m.loadCatalog()
		return m, waitForReload(m.reloads)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "left", "shift+tab":
			m.ScaleIdx = (m.ScaleIdx + len(scaleRows) - 1) % len(scaleRows)
			return m, nil
		case "right", "tab":
			m.ScaleIdx = (m.ScaleIdx + 1) % len(scaleRows)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("tempo — time scale converter"))
	b.WriteString("\n\n")

	active := scaleRows[m.ScaleIdx]
	b.WriteString(fmt.Sprintf("  %s %s\n",
		styleSelected.Render(active.name), m.Input.View()))
	b.WriteString(styleDim.Render("  ←/→ change scale · q quit"))
	b.WriteString("\n\n")

	v, err := strconv.ParseFloat(strings.TrimSpace(m.Input.Value()), 64)
	if err != nil {
		b.WriteString("  " + styleError.Render("waiting for a numeric value") + "\n")
		return b.String()
	}

	mjd := active.toMJD(v)
	for i, r := range scaleRows {
		indicator := "  "
		if i == m.ScaleIdx {
			indicator = styleSelected.Render(selectionIndicator) + " "
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			indicator,
			styleScaleName.Render(fmt.Sprintf("%-4s", r.name)),
			styleValue.Render(strconv.FormatFloat(r.fromMJD(mjd), 'f', -1, 64))))
	}

	if c, err := tempo.New[tempo.MJD](mjd).ToCivil(); err == nil {
		b.WriteString("\n  " + styleDim.Render("civil (UTC): "+c.String()) + "\n")
	}

	b.WriteString(m.viewCatalog(mjd))
	if m.err != nil {
		b.WriteString("\n  " + styleError.Render(m.err.Error()) + "\n")
	}
	return b.String()
}

// viewCatalog renders the epoch catalog with each entry's offset from the
// currently displayed instant.
func (m Model) viewCatalog(mjd float64) string {
	if len(m.epochs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  " + styleDim.Render("catalog") + "\n")
	for _, e := range m.epochs {
		v, err := entryMJD(e)
		if err != nil {
			b.WriteString(fmt.Sprintf("  %-20s %s\n", e.Name, styleError.Render(err.Error())))
			continue
		}
		delta := mjd - v
		b.WriteString(fmt.Sprintf("  %-20s %s %s\n",
			e.Name,
			styleValue.Render(strconv.FormatFloat(v, 'f', -1, 64)),
			styleDim.Render(fmt.Sprintf("(%+.4f d)", delta))))
	}
	return b.String()
}

// entryMJD projects a catalog entry onto MJD.
func entryMJD(e catalog.Entry) (float64, error) {
	idx := -1
	for i, r := range scaleRows {
		if strings.EqualFold(r.name, e.Scale) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("unknown scale %q", e.Scale)
	}
	if e.Value != nil {
		return scaleRows[idx].toMJD(*e.Value), nil
	}
	c, err := parseEntryCivil(e.Civil)
	if err != nil {
		return 0, err
	}
	t, err := tempo.FromCivil[tempo.MJD](c)
	if err != nil {
		return 0, err
	}
	return t.Value(), nil
}

// parseEntryCivil parses the catalog's "YYYY-MM-DD [HH:MM:SS]" form.
func parseEntryCivil(s string) (tempo.Civil, error) {
	var c tempo.Civil
	var year, month, day, hour, minute, second int
	datePart, timePart, hasTime := strings.Cut(strings.TrimSpace(s), " ")
	if n, err := fmt.Sscanf(datePart, "%d-%d-%d", &year, &month, &day); n != 3 || err != nil {
		return tempo.Civil{}, fmt.Errorf("invalid date %q", s)
	}
	// Keep out-of-range components from wrapping during narrowing.
	if year < math.MinInt32 || year > math.MaxInt32 || month < 1 || month > 12 || day < 1 || day > 31 {
		return tempo.Civil{}, fmt.Errorf("invalid date %q", s)
	}
	if hasTime {
		if n, err := fmt.Sscanf(timePart, "%d:%d:%d", &hour, &minute, &second); n != 3 || err != nil {
			return tempo.Civil{}, fmt.Errorf("invalid time %q", s)
		}
		if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 60 {
			return tempo.Civil{}, fmt.Errorf("invalid time %q", s)
		}
	}
	c.Year = int32(year)
	c.Month = uint8(month)
	c.Day = uint8(day)
	c.Hour = uint8(hour)
	c.Minute = uint8(minute)
	c.Second = uint8(second)
	return c, nil
}
