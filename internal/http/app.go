package httpapi

import (
	"time"

	"github.com/viscontie/junk-mail-service/internal/cart"
	"github.com/viscontie/junk-mail-service/internal/config"
	"github.com/viscontie/junk-mail-service/internal/identity"
	"github.com/viscontie/junk-mail-service/internal/notify"
	"github.com/viscontie/junk-mail-service/internal/orders"
	"github.com/viscontie/junk-mail-service/internal/prefs"
	"github.com/viscontie/junk-mail-service/internal/store"
)

// App bundles the handlers' collaborators.
type App struct {
	Cfg        config.Config
	Service    *orders.Service
	Store      store.Store
	Identity   identity.Resolver
	Carts      *cart.Registry
	Prefs      prefs.Store
	Reminders  *notify.Reminders
	Dispatcher *notify.Dispatcher

	started time.Time
}

// NewApp wires an App from its parts.
func NewApp(cfg config.Config, svc *orders.Service, st store.Store, id identity.Resolver, carts *cart.Registry, p prefs.Store, rem *notify.Reminders, disp *notify.Dispatcher) *App {
	return &App{
		Cfg:        cfg,
		Service:    svc,
		Store:      st,
		Identity:   id,
		Carts:      carts,
		Prefs:      p,
		Reminders:  rem,
		Dispatcher: disp,
		started:    time.Now(),
	}
}

// StartShutdown closes notification intake ahead of the drain.
func (a *App) StartShutdown() {
	if a.Dispatcher != nil {
		a.Dispatcher.CloseIntake()
	}
	if a.Reminders != nil {
		a.Reminders.Stop()
	}
}
