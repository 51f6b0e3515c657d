package dolphin

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/memory"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/mock/gomock"

	"github.com/bfbbtools/gamehook/go/game"
	"github.com/bfbbtools/gamehook/go/models"
	"github.com/bfbbtools/gamehook/go/models/sim"
)

var _ = Describe("Provider", func() {
	var (
		mockCtrl *gomock.Controller
		lister   *MockLister
		platform *MockPlatform
		cfg      *models.Config
		emu      *sim.Process
		provider *Provider
	)

	dolphin := []models.ProcessInfo{
		{Pid: 100, Name: "bash"},
		{Pid: 200, Name: "dolphin-emu"},
	}
	regionSize := uint64(models.RegionSize)

	expectHook := func(p *sim.Process) {
		lister.EXPECT().Processes().Return(dolphin, nil)
		platform.EXPECT().FindRegion(200, regionSize).Return(uint64(testRegion), nil)
		platform.EXPECT().Open(200).Return(p, nil)
	}

	spatulas := func() (uint32, error) {
		var n uint32
		err := provider.DoWithInterface(func(g *Interface) error {
			var err error
			n, err = g.SpatulaCount.Get()
			return err
		})
		return n, err
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		lister = NewMockLister(mockCtrl)
		platform = NewMockPlatform(mockCtrl)
		cfg = models.DefaultConfig()
		cfg.ProcessNames = []string{"dolphin-emu"}
		emu = newEmu(200)
		emu.WriteUint(host(SpatulaCountAddr), 4, 42)
		provider = MakeBuilder().
			WithConfig(cfg).
			WithLister(lister).
			WithPlatform(platform).
			WithLogger(&log.Logger{Handler: discard.New(), Level: log.DebugLevel}).
			Build()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should start unhooked", func() {
		Expect(provider.State()).To(Equal(Unhooked))
		Expect(provider.Session()).To(BeNil())
	})

	It("should report a missing process", func() {
		lister.EXPECT().Processes().Return(dolphin[:1], nil)

		err := provider.DoWithInterface(func(*Interface) error {
			Fail("must not run unhooked")
			return nil
		})

		Expect(errors.Is(err, models.ErrProcessNotFound)).To(BeTrue())
		Expect(provider.State()).To(Equal(Unhooked))
	})

	It("should report a missing region", func() {
		lister.EXPECT().Processes().Return(dolphin, nil)
		platform.EXPECT().FindRegion(200, regionSize).Return(uint64(0), models.ErrRegionNotFound)

		err := provider.Hook()

		Expect(errors.Is(err, models.ErrRegionNotFound)).To(BeTrue())
		Expect(provider.State()).To(Equal(Unhooked))
	})

	It("should skip processes without a region", func() {
		procs := []models.ProcessInfo{
			{Pid: 199, Name: "dolphin-emu"},
			{Pid: 200, Name: "dolphin-emu-nogui"},
		}
		lister.EXPECT().Processes().Return(procs, nil)
		platform.EXPECT().FindRegion(199, regionSize).Return(uint64(0), models.ErrRegionNotFound)
		platform.EXPECT().FindRegion(200, regionSize).Return(uint64(testRegion), nil)
		platform.EXPECT().Open(200).Return(emu, nil)

		Expect(provider.Hook()).To(Succeed())
		Expect(provider.Session().Pid).To(Equal(200))
		Expect(provider.Session().Region).To(Equal(uint64(testRegion)))
	})

	It("should stop on unsupported platforms", func() {
		lister.EXPECT().Processes().Return(dolphin, nil)
		platform.EXPECT().FindRegion(200, regionSize).Return(uint64(0), models.ErrUnsupported)

		Expect(errors.Is(provider.Hook(), models.ErrUnsupported)).To(BeTrue())
	})

	It("should pass listing errors through", func() {
		boom := errors.New("boom")
		lister.EXPECT().Processes().Return(nil, boom)

		Expect(errors.Is(provider.Hook(), boom)).To(BeTrue())
		Expect(provider.State()).To(Equal(Unhooked))
	})

	It("should reject the wrong game", func() {
		emu.MemWrite(testRegion, []byte("GALE01"))
		expectHook(emu)

		err := provider.Hook()

		Expect(errors.Is(err, models.ErrWrongGame)).To(BeTrue())
		Expect(provider.State()).To(Equal(Unhooked))
		Expect(emu.Closed()).To(BeTrue())
	})

	It("should move on to an emulator running the right game", func() {
		emu.MemWrite(testRegion, []byte("GALE01"))
		right := newEmu(300)
		right.WriteUint(host(SpatulaCountAddr), 4, 7)
		lister.EXPECT().Processes().Return(append(dolphin, models.ProcessInfo{Pid: 300, Name: "dolphin-emu"}), nil)
		platform.EXPECT().FindRegion(200, regionSize).Return(uint64(testRegion), nil)
		platform.EXPECT().Open(200).Return(emu, nil)
		platform.EXPECT().FindRegion(300, regionSize).Return(uint64(testRegion), nil)
		platform.EXPECT().Open(300).Return(right, nil)

		Expect(provider.Hook()).To(Succeed())
		Expect(emu.Closed()).To(BeTrue())
		Expect(provider.Session().Pid).To(Equal(300))
		Expect(spatulas()).To(BeEquivalentTo(7))
	})

	It("should skip identity validation with an empty signature", func() {
		cfg.Signature = nil
		emu.MemWrite(testRegion, []byte("GALE01"))
		expectHook(emu)

		Expect(provider.Hook()).To(Succeed())
		Expect(provider.State()).To(Equal(Hooked))
	})

	It("should hook once and reuse the session", func() {
		expectHook(emu)

		n, err := spatulas()
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(uint32(42)))
		session := provider.Session()

		n, err = spatulas()
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(uint32(42)))
		Expect(provider.Session()).To(BeIdenticalTo(session))
		Expect(provider.State()).To(Equal(Hooked))
	})

	It("should rehook after the process goes away", func() {
		expectHook(emu)
		_, err := spatulas()
		Expect(err).NotTo(HaveOccurred())
		first := provider.Session().ID

		emu.Close()
		_, err = spatulas()
		Expect(models.IsConnectivity(err)).To(BeTrue())
		Expect(provider.State()).To(Equal(Unhooked))

		restarted := newEmu(200)
		restarted.WriteUint(host(SpatulaCountAddr), 4, 7)
		expectHook(restarted)
		n, err := spatulas()
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(uint32(7)))
		Expect(provider.Session().ID).NotTo(Equal(first))
	})

	It("should keep the hook on invalid data", func() {
		expectHook(emu)
		emu.MemWrite(host(GameOstrichAddr), []byte{5})

		err := provider.DoWithInterface(func(g *Interface) error {
			_, err := g.GameOstrich.Get()
			return err
		})

		Expect(errors.Is(err, models.ErrInvalidData)).To(BeTrue())
		Expect(provider.State()).To(Equal(Hooked))
	})

	It("should keep the hook on invalid pointers", func() {
		expectHook(emu)

		err := provider.DoWithInterface(func(g *Interface) error {
			return g.CollectSpatula(game.SpongebobsCloset, game.SpongebobHouse)
		})

		Expect(errors.Is(err, models.ErrInvalidPointer)).To(BeTrue())
		Expect(provider.State()).To(Equal(Hooked))
	})

	It("should report availability", func() {
		lister.EXPECT().Processes().Return(nil, nil)
		Expect(provider.IsAvailable()).To(BeFalse())

		expectHook(emu)
		Expect(provider.IsAvailable()).To(BeTrue())
		Expect(provider.IsAvailable()).To(BeTrue())
	})

	It("should close the process on Close", func() {
		expectHook(emu)
		Expect(provider.Hook()).To(Succeed())

		Expect(provider.Close()).To(Succeed())

		Expect(provider.State()).To(Equal(Unhooked))
		Expect(emu.Closed()).To(BeTrue())
	})

	It("should drop the old hook when hooking again", func() {
		expectHook(emu)
		Expect(provider.Hook()).To(Succeed())

		lister.EXPECT().Processes().Return(nil, nil)
		Expect(errors.Is(provider.Hook(), models.ErrProcessNotFound)).To(BeTrue())
		Expect(emu.Closed()).To(BeTrue())
		Expect(provider.State()).To(Equal(Unhooked))
	})

	It("should trace memory accesses when verbose", func() {
		cfg.Verbose = true
		logs := memory.New()
		provider = MakeBuilder().
			WithConfig(cfg).
			WithLister(lister).
			WithPlatform(platform).
			WithLogger(&log.Logger{Handler: logs, Level: log.DebugLevel}).
			Build()
		expectHook(emu)

		Expect(spatulas()).To(BeEquivalentTo(42))
		Expect(provider.Session().Trace).NotTo(BeNil())
		Expect(provider.Session().Trace.Empty()).To(BeTrue())

		var traced []string
		for _, e := range logs.Entries {
			if e.Level == log.DebugLevel && (e.Message[0] == 'R' || e.Message[0] == 'W') {
				traced = append(traced, e.Message)
			}
		}
		Expect(traced).To(ConsistOf(HavePrefix("R  ")))
	})
})
