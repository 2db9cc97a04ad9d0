package lib

import (
	"context"
	"log"
	"sync"
	"tpw/src/config"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// BrowserManager owns the one shared headless Chromium process used by every
// PDF render. Launch and relaunch are serialized by a mutex; each render gets
// an ephemeral page, never a fresh browser. A semaphore caps concurrent pages
// so a burst of renders cannot exhaust memory.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	sem      chan struct{}
}

var (
	browserManager     *BrowserManager
	browserManagerOnce sync.Once
)

func GetBrowserManager() *BrowserManager {
	browserManagerOnce.Do(func() {
		browserManager = &BrowserManager{
			sem: make(chan struct{}, config.PdfMaxConcurrentPages()),
		}
	})
	return browserManager
}

func (m *BrowserManager) launch() (*rod.Browser, error) {
	l := launcher.New().Headless(true)
	if bin := config.ChromeExecutablePath(); bin != "" {
		l = l.Bin(bin)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, err
	}
	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, err
	}
	m.launcher = l
	log.Println("[browser] chromium launched")
	return b, nil
}

func healthy(b *rod.Browser) bool {
	_, err := proto.BrowserGetVersion{}.Call(b)
	return err == nil
}

// acquire returns a connected browser, launching or relaunching as needed.
// Concurrent first-callers do not race to launch duplicate processes.
func (m *BrowserManager) acquire() (*rod.Browser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.browser != nil {
		if healthy(m.browser) {
			return m.browser, nil
		}
		log.Println("[browser] stale instance detected, relaunching")
		if err := m.browser.Close(); err != nil {
			log.Printf("[browser] stale close: %s\n", err.Error())
		}
		m.browser = nil
	}
	b, err := m.launch()
	if err != nil {
		return nil, err
	}
	m.browser = b
	return b, nil
}

// Page leases an ephemeral page bound to ctx. The returned release func must
// always be called; it closes the page best-effort and frees the slot.
func (m *BrowserManager) Page(ctx context.Context) (*rod.Page, func(), error) {
	select {
	case m.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}
	b, err := m.acquire()
	if err != nil {
		<-m.sem
		return nil, nil, err
	}
	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		<-m.sem
		return nil, nil, err
	}
	// Close through the original handle, not the ctx-bound one: after a
	// timeout or cancellation the bound handle can no longer issue the
	// close call and the target would leak until relaunch.
	release := func() {
		if err := page.Close(); err != nil {
			log.Printf("[browser] page close: %s\n", err.Error())
		}
		<-m.sem
	}
	return page.Context(ctx), release, nil
}

// WarmUp launches the browser ahead of the first render so that request does
// not pay launch latency. Failures are logged only.
func (m *BrowserManager) WarmUp() {
	if _, err := m.acquire(); err != nil {
		log.Printf("[browser] warm-up failed: %s\n", err.Error())
	}
}

// Close disposes the browser on shutdown, best-effort.
func (m *BrowserManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.browser == nil {
		return
	}
	if err := m.browser.Close(); err != nil {
		log.Printf("[browser] close: %s\n", err.Error())
	}
	if m.launcher != nil {
		m.launcher.Kill()
	}
	m.browser = nil
}
