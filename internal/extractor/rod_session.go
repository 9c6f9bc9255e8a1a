package extractor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aleister1102/hlsprobe/internal/common"
	"github.com/aleister1102/hlsprobe/internal/config"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/rs/zerolog"
)

// RodLauncher launches a dedicated headless Chrome per session with go-rod.
type RodLauncher struct {
	config config.BrowserConfig
	logger zerolog.Logger
}

// NewRodLauncher creates a launcher for the given browser configuration
func NewRodLauncher(cfg config.BrowserConfig, logger zerolog.Logger) *RodLauncher {
	return &RodLauncher{
		config: cfg,
		logger: logger.With().Str("component", "RodLauncher").Logger(),
	}
}

// newLauncher applies the browser flags. Same-origin checks, sandboxing and GPU
// are turned off: the page is untrusted but only inspected passively.
func (rl *RodLauncher) newLauncher() *launcher.Launcher {
	l := launcher.New().Headless(rl.config.Headless)

	if rl.config.ChromePath != "" {
		l = l.Bin(rl.config.ChromePath)
	}

	l = l.
		Set("no-sandbox").
		Set("disable-setuid-sandbox").
		Set("disable-web-security").
		Set("disable-features", "IsolateOrigins,site-per-process").
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("no-first-run").
		Set("disable-default-apps").
		Set("disable-sync").
		Set("mute-audio")

	for _, arg := range rl.config.ExtraArgs {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name == "" {
			continue
		}
		if hasValue {
			l = l.Set(flags.Flag(name), value)
		} else {
			l = l.Set(flags.Flag(name))
		}
	}

	return l
}

// Launch starts Chrome, connects to it and opens a configured blank page.
func (rl *RodLauncher) Launch(ctx context.Context) (Session, error) {
	l := rl.newLauncher()

	controlURL, err := l.Launch()
	if err != nil {
		return nil, common.WrapError(err, "failed to launch browser")
	}

	session := &rodSession{launcher: l, logger: rl.logger}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		_ = session.Close()
		return nil, common.WrapError(err, "failed to connect browser")
	}
	session.browser = browser

	var page *rod.Page
	if rl.config.Stealth {
		page, err = stealth.Page(browser.Context(ctx))
	} else {
		page, err = browser.Context(ctx).Page(proto.TargetCreateTarget{})
	}
	if err != nil {
		_ = session.Close()
		return nil, common.WrapError(err, "failed to create page")
	}
	session.page = page.Context(context.Background())

	if err := session.page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: rl.config.UserAgent}); err != nil {
		_ = session.Close()
		return nil, common.WrapError(err, "failed to set user agent")
	}

	if err := session.page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  rl.config.WindowWidth,
		Height: rl.config.WindowHeight,
	}); err != nil {
		rl.logger.Warn().Err(err).Msg("Failed to set viewport")
	}

	rl.logger.Debug().Str("control_url", controlURL).Bool("stealth", rl.config.Stealth).Msg("Browser session ready")
	return session, nil
}

type rodSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	router   *rod.HijackRouter
	logger   zerolog.Logger

	stopEvents context.CancelFunc
	closeOnce  sync.Once
	closeErr   error
}

// Observe routes every request through the observer and listens for responses.
func (s *rodSession) Observe(observer *TrafficObserver) error {
	if err := (proto.NetworkEnable{}).Call(s.page); err != nil {
		return common.WrapError(err, "failed to enable network domain")
	}

	router := s.page.HijackRequests()
	err := router.Add("*", "", func(h *rod.Hijack) {
		action := observer.OnRequest(h.Request.URL().String(), string(h.Request.Type()))
		if action == ActionBlock {
			h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
			return
		}
		h.ContinueRequest(&proto.FetchContinueRequest{})
	})
	if err != nil {
		return common.WrapError(err, "failed to install request interception")
	}
	go router.Run()
	s.router = router

	eventCtx, cancel := context.WithCancel(context.Background())
	s.stopEvents = cancel
	wait := s.page.Context(eventCtx).EachEvent(func(e *proto.NetworkResponseReceived) {
		if e.Response == nil {
			return
		}
		observer.OnResponse(e.Response.URL, responseContentType(e.Response))
	})
	go wait()

	return nil
}

// responseContentType prefers the raw header over the browser's sniffed MIME type.
func responseContentType(resp *proto.NetworkResponse) string {
	for name, value := range resp.Headers {
		if strings.EqualFold(name, "content-type") {
			return value.Str()
		}
	}
	return resp.MIMEType
}

// Navigate waits for the networkAlmostIdle lifecycle event, bounded by timeout.
func (s *rodSession) Navigate(ctx context.Context, pageURL string, timeout time.Duration) error {
	navCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	page := s.page.Context(navCtx)
	wait := page.WaitNavigation(proto.PageLifecycleEventNameNetworkAlmostIdle)

	if err := page.Navigate(pageURL); err != nil {
		return common.WrapError(err, fmt.Sprintf("failed to navigate to %s", pageURL))
	}

	wait()

	if err := navCtx.Err(); err != nil {
		if ctx.Err() == nil {
			return fmt.Errorf("navigation to %s did not settle within %s: %w", pageURL, timeout, common.ErrTimeout)
		}
		return common.WrapError(err, "navigation cancelled")
	}
	return nil
}

// Snapshot evaluates snapshotScript in the page and decodes the result.
func (s *rodSession) Snapshot(ctx context.Context, opts SnapshotOptions) (*PageSnapshot, error) {
	globals := opts.PlayerGlobals
	if globals == nil {
		globals = []string{}
	}
	attrs := opts.StreamAttributes
	if attrs == nil {
		attrs = []string{}
	}

	res, err := s.page.Context(ctx).Eval(snapshotScript, globals, attrs, ManifestMarker)
	if err != nil {
		return nil, common.WrapError(err, "in-page evaluation failed")
	}

	var snapshot PageSnapshot
	if err := res.Value.Unmarshal(&snapshot); err != nil {
		return nil, common.WrapError(err, "failed to decode page snapshot")
	}
	return &snapshot, nil
}

// Close stops interception, closes the browser and removes its profile directory.
func (s *rodSession) Close() error {
	s.closeOnce.Do(func() {
		var errs []error

		if s.stopEvents != nil {
			s.stopEvents()
		}
		if s.router != nil {
			if err := s.router.Stop(); err != nil {
				errs = append(errs, common.WrapError(err, "failed to stop request interception"))
			}
		}
		if s.browser != nil {
			if err := s.browser.Close(); err != nil {
				errs = append(errs, common.WrapError(err, "failed to close browser"))
				if s.launcher != nil {
					s.launcher.Kill()
				}
			}
		} else if s.launcher != nil {
			s.launcher.Kill()
		}
		if s.launcher != nil {
			s.launcher.Cleanup()
		}

		s.closeErr = common.CombineErrors(errs)
		s.logger.Debug().Err(s.closeErr).Msg("Browser session closed")
	})
	return s.closeErr
}
