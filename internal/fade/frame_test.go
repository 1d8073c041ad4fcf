package fade_test

import (
	"time"

	"github.com/andres-erbsen/clock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fadegrid/internal/fade"
)

var _ = Describe("Frame", func() {
	var (
		mock *clock.Mock
		w    *fade.Widget
	)

	BeforeEach(func() {
		mock = clock.NewMock()
		w = fade.New(fade.Options{
			Timing: fade.Timing{Delay: time.Second},
			Clock:  mock,
		})
		w.Mount(800, 600)
	})

	AfterEach(func() {
		w.Unmount()
	})

	allHidden := func(f fade.Frame) {
		Expect(f.Animated).To(BeFalse())
		for _, t := range f.Tiles {
			Expect(t.Opacity).To(BeZero())
			Expect(t.Scale).To(Equal(1.0))
		}
	}

	It("lays tiles out row by row", func() {
		f := w.Frame(mock.Now())
		Expect(f.Tiles).To(HaveLen(96))
		Expect(f.Tiles[13].Col).To(Equal(1))
		Expect(f.Tiles[13].Row).To(Equal(1))
		Expect(f.Wave).To(Equal(w.WaveDuration()))
	})

	It("suppresses tiles before the entrance delay", func() {
		allHidden(w.Frame(mock.Now().Add(500 * time.Millisecond)))
	})

	It("staggers the entrance once visible", func() {
		mock.Add(time.Second)
		Eventually(w.Visible).Should(BeTrue())

		f := w.Frame(mock.Now().Add(600 * time.Millisecond))
		Expect(f.Animated).To(BeTrue())
		Expect(f.Tiles[0].Opacity).To(Equal(1.0))
		Expect(f.Tiles[95].Opacity).To(BeZero())

		f = w.Frame(mock.Now().Add(95*fade.DefaultStagger + time.Second))
		Expect(f.Tiles[95].Opacity).To(Equal(1.0))
	})

	It("suppresses tiles while resizing and restarts after the settle", func() {
		mock.Add(2 * time.Second)
		Eventually(w.Visible).Should(BeTrue())

		w.Resize(1024, 768)
		allHidden(w.Frame(mock.Now().Add(100 * time.Millisecond)))

		mock.Add(fade.DefaultDebounce)
		Eventually(w.State).Should(Equal(fade.Idle))
		f := w.Frame(mock.Now())
		Expect(f.Animated).To(BeTrue())
		Expect(f.Tiles).To(HaveLen(w.Grid().Tiles()))
		Expect(f.Tiles[1].Opacity).To(BeZero())
	})
})
