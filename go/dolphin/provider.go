package dolphin

import (
	"bytes"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/rs/xid"

	"github.com/bfbbtools/gamehook/go/gamevar"
	"github.com/bfbbtools/gamehook/go/models"
)

// State of a Provider's hook.
type State int

const (
	Unhooked State = iota
	Hooked
)

func (s State) String() string {
	if s == Hooked {
		return "hooked"
	}
	return "unhooked"
}

// Session is everything that lives exactly as long as one hook.
type Session struct {
	ID        xid.ID
	Pid       int
	Region    uint64
	Process   models.Process
	Interface *Interface
	// Trace records memory accesses when the provider is verbose.
	Trace *models.MemLog
}

// Provider hooks Dolphin on demand and drops the hook when the process goes
// away. It performs no background work and is not safe for concurrent use.
type Provider struct {
	cfg      *models.Config
	lister   Lister
	platform Platform
	log      log.Interface

	session *Session
}

var _ gamevar.Provider[Family] = (*Provider)(nil)

// Builder builds Providers.
type Builder struct {
	cfg      *models.Config
	lister   Lister
	platform Platform
	log      log.Interface
}

// MakeBuilder returns a Builder for the default configuration on this OS.
func MakeBuilder() Builder {
	return Builder{cfg: models.DefaultConfig()}
}

func (b Builder) WithConfig(cfg *models.Config) Builder {
	b.cfg = cfg
	return b
}

func (b Builder) WithLister(l Lister) Builder {
	b.lister = l
	return b
}

func (b Builder) WithPlatform(p Platform) Builder {
	b.platform = p
	return b
}

func (b Builder) WithLogger(l log.Interface) Builder {
	b.log = l
	return b
}

func (b Builder) Build() *Provider {
	p := &Provider{cfg: b.cfg, lister: b.lister, platform: b.platform, log: b.log}
	if p.lister == nil {
		p.lister = GopsutilLister{}
	}
	if p.platform == nil {
		p.platform = DefaultPlatform(p.cfg)
	}
	if p.log == nil {
		p.log = log.Log
	}
	return p
}

func (p *Provider) State() State {
	if p.session == nil {
		return Unhooked
	}
	return Hooked
}

// Session returns the current session, or nil when unhooked.
func (p *Provider) Session() *Session {
	return p.session
}

// Hook drops any existing hook and attaches to the first emulator process
// that has an emulated memory region running the configured game. On
// failure the provider is left unhooked.
func (p *Provider) Hook() error {
	p.Unhook()

	procs, err := p.lister.Processes()
	if err != nil {
		return err
	}
	found := false
	var wrongGame error
	for _, proc := range procs {
		if !matchName(proc.Name, p.cfg.ProcessNames) {
			continue
		}
		found = true
		ctx := p.log.WithFields(log.Fields{"pid": proc.Pid, "name": proc.Name})
		ctx.Debug("found emulator process")

		region, err := p.platform.FindRegion(proc.Pid, p.cfg.RegionSize)
		if errors.Is(err, models.ErrUnsupported) {
			return err
		} else if errors.Is(err, models.ErrRegionNotFound) {
			ctx.Debug("no emulated memory region")
			continue
		} else if err != nil {
			ctx.WithError(err).Warn("scanning process memory")
			continue
		}
		ctx.WithField("region", region).Debug("found emulated memory region")
		err = p.attach(proc.Pid, region)
		if errors.Is(err, models.ErrWrongGame) {
			ctx.WithError(err).Warn("skipping emulator")
			wrongGame = err
			continue
		}
		return err
	}
	if !found {
		return models.ErrProcessNotFound
	}
	if wrongGame != nil {
		return wrongGame
	}
	return models.ErrRegionNotFound
}

func (p *Provider) attach(pid int, region uint64) error {
	proc, err := p.platform.Open(pid)
	if err != nil {
		return err
	}
	if err := p.checkIdentity(proc, region); err != nil {
		if cerr := proc.Close(); cerr != nil {
			p.log.WithError(cerr).Warn("closing process")
		}
		return err
	}
	s := &Session{
		ID:      xid.New(),
		Pid:     pid,
		Region:  region,
		Process: proc,
	}
	var mem models.MemIO = proc
	if p.cfg.Verbose {
		s.Trace = models.NewMemLog(proc)
		mem = s.Trace
	}
	s.Interface = NewInterface(mem, region)
	p.session = s
	p.log.WithFields(log.Fields{
		"pid":     pid,
		"region":  region,
		"session": p.session.ID,
	}).Info("hooked")
	return nil
}

func (p *Provider) checkIdentity(mem models.MemIO, region uint64) error {
	sig := p.cfg.Signature
	if len(sig) == 0 {
		return nil
	}
	addr, err := translate(p.cfg.SignatureAddr, region)
	if err != nil {
		return err
	}
	got := make([]byte, len(sig))
	if err := mem.MemReadInto(got, addr); err != nil {
		return errors.Wrap(models.Unhooked("read", addr, err), "reading game id")
	}
	if !bytes.Equal(got, sig) {
		return errors.Wrapf(models.ErrWrongGame, "game id is %q, want %q", got, sig)
	}
	return nil
}

// Unhook closes the process and drops the session. It is a no-op when
// already unhooked.
func (p *Provider) Unhook() {
	s := p.session
	if s == nil {
		return
	}
	p.session = nil
	ctx := p.log.WithFields(log.Fields{"pid": s.Pid, "session": s.ID})
	if err := s.Process.Close(); err != nil {
		ctx.WithError(err).Warn("closing process")
	}
	ctx.Info("unhooked")
}

// Close releases the hook, if any.
func (p *Provider) Close() error {
	p.Unhook()
	return nil
}

// DoWithInterface hooks if needed, then runs fn. A connectivity error from
// fn unhooks the provider so the next call hooks again. Errors are never
// retried.
func (p *Provider) DoWithInterface(fn func(*Interface) error) error {
	if p.session == nil {
		if err := p.Hook(); err != nil {
			return err
		}
	}
	s := p.session
	err := fn(s.Interface)
	if s.Trace != nil && !s.Trace.Empty() {
		s.Trace.Print(p.log.WithField("session", s.ID))
		s.Trace.Reset()
	}
	if models.IsConnectivity(err) && p.session == s {
		p.log.WithError(err).Warn("lost connection to emulator")
		p.Unhook()
	}
	return err
}

// IsAvailable hooks if needed and reports whether the provider is hooked.
func (p *Provider) IsAvailable() bool {
	if p.session != nil {
		return true
	}
	if err := p.Hook(); err != nil {
		p.log.WithError(err).Debug("emulator not available")
		return false
	}
	return true
}
