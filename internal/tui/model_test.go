package tui

import (
	"time"

	"github.com/andres-erbsen/clock"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fadegrid/internal/config"
	"github.com/san-kum/fadegrid/internal/fade"
	"github.com/san-kum/fadegrid/internal/layout"
)

var _ = Describe("Model", func() {
	var (
		mock   *clock.Mock
		widget *fade.Widget
		m      Model
	)

	update := func(msg tea.Msg) tea.Cmd {
		next, cmd := m.Update(msg)
		m = next.(Model)
		return cmd
	}

	nextEvent := func() fade.Event {
		var ev fade.Event
		Eventually(m.events).Should(Receive(&ev))
		return ev
	}

	BeforeEach(func() {
		mock = clock.NewMock()
		widget = fade.New(fade.Options{
			Timing: fade.Timing{Delay: 300 * time.Millisecond},
			Clock:  mock,
		})
		m = NewModel(Options{
			Widget:  widget,
			Clock:   mock,
			Layout:  config.DefaultConfig().Layout,
			Message: "wise mystical tree",
		})
	})

	AfterEach(func() {
		m.Close()
	})

	It("waits for a window size before drawing", func() {
		Expect(m.View()).To(Equal("sizing…"))
		Expect(m.Init()).NotTo(BeNil())
	})

	It("mounts on the first window size", func() {
		update(tea.WindowSizeMsg{Width: 100, Height: 40})

		// (98*8 - 32)/64 = 11 columns, (36*16 - 32)/64 = 8 rows
		Expect(widget.Grid()).To(Equal(layout.Grid{Cols: 11, Rows: 8}))
		Expect(widget.State()).To(Equal(fade.Idle))
		Expect(nextEvent().Kind).To(Equal(fade.LayoutSettled))
	})

	It("resizes through the debounce", func() {
		update(tea.WindowSizeMsg{Width: 100, Height: 40})
		nextEvent()

		update(tea.WindowSizeMsg{Width: 60, Height: 20})
		Expect(widget.State()).To(Equal(fade.Resizing))
		Expect(nextEvent().Kind).To(Equal(fade.LayoutUnsettled))

		mock.Add(fade.DefaultDebounce)
		Eventually(widget.State).Should(Equal(fade.Idle))
		Expect(widget.Grid()).To(Equal(layout.ComputeGrid(58*8, 16*16, 64, 16)))
	})

	It("fades the overlay with layout events", func() {
		update(tea.WindowSizeMsg{Width: 100, Height: 40})
		cmd := update(eventMsg(nextEvent()))
		Expect(cmd).NotTo(BeNil())
		mock.Add(overlayFade)
		Expect(m.overlay.at(mock.Now())).To(BeNumerically("~", 1, 1e-9))

		update(tea.WindowSizeMsg{Width: 90, Height: 40})
		update(eventMsg(nextEvent()))
		Expect(m.overlay.at(mock.Now())).To(BeNumerically("~", 1, 1e-9))
		mock.Add(overlayFade)
		Expect(m.overlay.at(mock.Now())).To(BeNumerically("~", 0, 1e-9))
	})

	It("renders the grid and status", func() {
		update(tea.WindowSizeMsg{Width: 100, Height: 40})
		mock.Add(2 * time.Second)
		Eventually(widget.Visible).Should(BeTrue())

		view := m.View()
		Expect(view).To(ContainSubstring("wise mystical tree"))
		Expect(view).To(ContainSubstring("11x8 tiles"))
		Expect(view).To(ContainSubstring(treeGlyph))
		Expect(view).To(ContainSubstring("q quit"))
	})

	It("cycles themes and toggles help", func() {
		update(tea.WindowSizeMsg{Width: 100, Height: 40})
		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
		Expect(m.theme.Name).To(Equal("slate"))
		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
		Expect(m.View()).To(ContainSubstring("Cycle themes"))
	})

	It("unmounts on quit", func() {
		update(tea.WindowSizeMsg{Width: 100, Height: 40})
		nextEvent()

		cmd := update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		Expect(cmd).NotTo(BeNil())
		Expect(cmd()).To(Equal(tea.Quit()))

		widget.Resize(10, 10)
		mock.Add(time.Second)
		Expect(widget.State()).To(Equal(fade.Idle))
		Expect(update(TickMsg(mock.Now()))).To(BeNil())
	})

	It("releases a pending event wait on close", func() {
		update(tea.WindowSizeMsg{Width: 100, Height: 40})
		nextEvent()

		done := make(chan tea.Msg, 1)
		wait := m.waitForEvent()
		go func() { done <- wait() }()

		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		Eventually(done).Should(Receive(BeNil()))
		Expect(m.waitForEvent()()).To(BeNil())
	})

	It("can be closed from several copies", func() {
		copied := m
		Expect(func() {
			copied.Close()
			m.Close()
		}).NotTo(Panic())
	})
})

var _ = Describe("rendering helpers", func() {
	It("shrinks tiles with scale", func() {
		Expect(footprint(8, layout.WavePeak)).To(Equal(8))
		Expect(footprint(8, 1)).To(Equal(7))
		Expect(footprint(8, 0.5)).To(Equal(3))
		Expect(footprint(8, 0)).To(Equal(0))
	})

	It("blends colours by opacity", func() {
		Expect(string(blend("#000000", "#ffffff", 0))).To(Equal("#000000"))
		Expect(string(blend("#000000", "#ffffff", 1))).To(Equal("#ffffff"))
		Expect(string(blend("nope", "#ffffff", 0.5))).To(Equal("#ffffff"))
	})

	It("falls back to the default theme", func() {
		Expect(GetTheme("missing").Name).To(Equal("emerald"))
		Expect(ThemeNames()).To(ConsistOf("emerald", "slate", "midnight"))
		Expect(nextTheme(ThemeMidnight).Name).To(Equal("emerald"))
	})

	It("keeps gradient text readable", func() {
		Expect(GradientText("", "#000000", "#ffffff")).To(BeEmpty())
		Expect(GradientText("fade", "#000000", "#ffffff")).To(ContainSubstring("f"))
	})
})
