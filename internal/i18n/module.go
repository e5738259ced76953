package i18n

import "go.uber.org/fx"

// Module provides the translator to the fx container.
var Module = fx.Provide(New)
