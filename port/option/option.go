// Package option holds the two optional-argument idioms used across chainkit:
// functional options that fill a Config struct,
// and Value, which tells apart "not supplied" from "supplied as the zero value".
package option

type Option[Config any] interface {
	// Configure will configure an option.
	Configure(*Config)
}

// Func (option.Func[Config]) is a default implementation for creating options.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// ToConfig folds the options into a Config.
// When *Config implements Init, it runs before the options are applied.
func ToConfig[Config any, Opt Option[Config]](opts []Opt) Config {
	var c Config
	if init, ok := any(&c).(initer); ok {
		init.Init()
	}
	for _, opt := range opts {
		if any(opt) == nil {
			continue
		}
		opt.Configure(&c)
	}
	return c
}

type initer interface {
	Init()
}
