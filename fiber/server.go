// Package fiber hosts modals over HTTP: it renders them into a page, serves
// the stylesheet and client runtime, and dispatches close actions back to
// the Go callbacks that own each modal's open flag.
package fiber

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/goccy/go-json"
	gofiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/aydenstechdungeon/modalkit/component"
	"github.com/aydenstechdungeon/modalkit/component/modal"
	"github.com/aydenstechdungeon/modalkit/config"
	"github.com/aydenstechdungeon/modalkit/embed"
	"github.com/aydenstechdungeon/modalkit/routing"
	"github.com/aydenstechdungeon/modalkit/state"
	mtempl "github.com/aydenstechdungeon/modalkit/templ"
)

// Route paths.
const (
	Prefix         = "/_modal"
	StylesheetPath = Prefix + "/" + embed.StylesheetName
	RuntimePath    = Prefix + "/" + embed.RuntimeName
	ActionPath     = Prefix + "/action/:name"
	StatePath      = Prefix + "/state"
)

// OpenAction returns the action name that re-opens the modal with the given id.
func OpenAction(id string) string {
	if id == "" {
		id = modal.DefaultID
	}
	return id + ".open"
}

type hostedModal struct {
	props component.Props
	cfg   modal.Config
	open  *state.Rune[bool]
	unsub state.Unsubscribe
}

// Server serves configured modals.
type Server struct {
	App     *gofiber.App
	Actions *routing.ActionRegistry

	mu     sync.RWMutex
	config config.Config
	modals []*hostedModal
	styles *CompressedContent
}

// NewServer creates a server for cfg and registers its routes.
func NewServer(cfg config.Config) *Server {
	s := &Server{
		Actions: routing.NewActionRegistry(),
	}

	s.App = gofiber.New(gofiber.Config{
		AppName:               cfg.AppName,
		BodyLimit:             cfg.MaxRequestBodySize,
		UnescapePath:          true,
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler: ErrorHandler(ErrorHandlerConfig{
			DevMode:   cfg.DevMode,
			APIPrefix: Prefix,
		}),
	})

	hash, err := embed.Hash(embed.StylesheetName)
	if err != nil {
		log.Printf("Stylesheet hash unavailable: %v", err)
	}
	s.styles = CompressStatic(DefaultCompressionConfig(), embed.Stylesheet(), "text/css; charset=utf-8", hash)

	s.Load(cfg)
	s.routes(cfg)
	return s
}

func (s *Server) routes(cfg config.Config) {
	s.App.Use(recover.New())
	if cfg.DevMode {
		s.App.Use(logger.New())
	}
	if cfg.Compress {
		compression := DefaultCompressionConfig()
		compression.SkipPaths = []string{StylesheetPath}
		s.App.Use(BrotliGzipMiddleware(compression))
	}

	s.App.Get("/", s.handlePage)
	s.App.Get(StylesheetPath, s.styles.Serve)
	s.App.Get(RuntimePath, func(c *gofiber.Ctx) error {
		c.Set(gofiber.HeaderContentType, "text/javascript; charset=utf-8")
		return c.Send(embed.RuntimeJS())
	})
	s.App.Get(StatePath, s.handleState)
	s.App.Post(ActionPath, s.handleAction)
	s.App.Use(NotFoundHandler())
}

// Load replaces the hosted modals with those of cfg. Every modal gets its
// own open flag, seeded from its isOpen prop, and its close and open actions.
// A modal whose props did not change keeps its current open flag.
func (s *Server) Load(cfg config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := make(map[string]*hostedModal, len(s.modals))
	for _, m := range s.modals {
		s.Actions.Unregister(m.cfg.CloseAction())
		s.Actions.Unregister(OpenAction(m.cfg.ID))
		previous[m.cfg.ID] = m
	}

	s.config = cfg
	modals := make([]*hostedModal, 0, len(cfg.Modals))
	for i, mc := range cfg.ModalConfigs() {
		props := cfg.Modals[i]
		m := &hostedModal{props: props}
		if prev, ok := previous[mc.ID]; ok && prev.props.Equals(props) {
			m.open, m.unsub = prev.open, prev.unsub
			delete(previous, mc.ID)
		} else {
			m.open = state.NewRune(mc.Open)
			id := mc.ID
			m.unsub = m.open.Subscribe(func(open bool) {
				log.Printf("Modal %q open=%v", id, open)
			})
		}

		open := m.open
		mc.OnClose = func() { open.Set(false) }
		m.cfg = mc

		s.Actions.Bind(mc)
		s.Actions.Register(OpenAction(mc.ID), func(context.Context) error {
			open.Set(true)
			return nil
		})
		modals = append(modals, m)
	}
	for _, m := range previous {
		m.unsub()
	}
	s.modals = modals
	log.Printf("Loaded %d modal(s)", len(s.modals))
}

// Modals returns the current configs, each with its live open flag.
func (s *Server) Modals() []modal.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]modal.Config, 0, len(s.modals))
	for _, m := range s.modals {
		cfg := m.cfg
		cfg.Open = m.open.Get()
		out = append(out, cfg)
	}
	return out
}

// Page returns the full HTML page for the current modals.
func (s *Server) Page() templ.Component {
	s.mu.RLock()
	title := s.config.AppName
	s.mu.RUnlock()

	modals := s.Modals()
	components := make([]templ.Component, 0, 2*len(modals)+1)
	components = append(components, launcher(modals))
	for _, cfg := range modals {
		components = append(components, modal.Render(cfg))
	}

	head := mtempl.Fragment(
		mtempl.Meta("viewport", "width=device-width, initial-scale=1.0"),
		mtempl.Title(title),
		mtempl.CSS(StylesheetPath),
		mtempl.Script(RuntimePath),
	)
	return mtempl.HTMLPage("en", head, mtempl.Fragment(components...))
}

// launcher lists a button per closed modal that re-opens it.
func launcher(modals []modal.Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="m-launcher">`); err != nil {
			return err
		}
		for _, cfg := range modals {
			if cfg.Open {
				continue
			}
			label := cfg.HeaderTitle
			if label == "" {
				label = cfg.ID
			}
			binding := mtempl.Binding{Event: "click", Action: OpenAction(cfg.ID)}
			if _, err := io.WriteString(w, `<button type="button" `+mtempl.EventAttr+`="`+templ.EscapeString(binding.String())+`">Open `+templ.EscapeString(label)+`</button>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})
}

func (s *Server) handlePage(c *gofiber.Ctx) error {
	c.Set(gofiber.HeaderContentType, gofiber.MIMETextHTMLCharsetUTF8)
	return s.Page().Render(c.UserContext(), c.Response().BodyWriter())
}

func (s *Server) handleState(c *gofiber.Ctx) error {
	open := make(map[string]bool)
	for _, cfg := range s.Modals() {
		open[cfg.ID] = cfg.Open
	}
	return c.JSON(gofiber.Map{"open": open, "actions": s.Actions.Names()})
}

func (s *Server) handleAction(c *gofiber.Ctx) error {
	name := c.Params("name")
	if err := s.Actions.Dispatch(c.UserContext(), name); err != nil {
		return err
	}
	return c.JSON(gofiber.Map{"ok": true, "action": name})
}

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	log.Printf("modalkit listening on %s", addr)
	return s.App.Listen(addr)
}

// Shutdown stops the server, waiting up to timeout for open requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.App.ShutdownWithTimeout(timeout)
}
