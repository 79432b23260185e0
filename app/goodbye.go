package app

import (
	"github.com/km-arc/go-facade/framework/container"
	"github.com/km-arc/go-facade/framework/logging"
	"github.com/km-arc/go-facade/framework/providers"
)

// GoodBye says good bye through an injected Logger instead of a facade.
type GoodBye struct {
	logger logging.Logger
}

// NewGoodBye builds a GoodBye that writes to logger.
func NewGoodBye(logger logging.Logger) *GoodBye {
	return &GoodBye{logger: logger}
}

// To logs "Good Bye <name>!".
func (g *GoodBye) To(name string) error {
	return g.logger.Log("Good Bye " + name + "!")
}

// GoodByeKey is the binding for *GoodBye, named after the type.
var GoodByeKey = container.TypeKey[*GoodBye]()

// GoodByeServiceProvider binds *GoodBye; its factory resolves the logger.
type GoodByeServiceProvider struct {
	container.BaseProvider
}

func (p *GoodByeServiceProvider) Register(app *container.Container) {
	container.Provide(app, GoodByeKey, func(c *container.Container) (*GoodBye, error) {
		logger, err := container.Resolve(c, providers.LoggerKey)
		if err != nil {
			return nil, err
		}
		return NewGoodBye(logger), nil
	})
}
