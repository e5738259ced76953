package media

import (
	"go.uber.org/fx"

	"github.com/academiq/academiq/internal/config"
	"github.com/academiq/academiq/internal/usecase"
)

// Module wires the disk attachment store.
var Module = fx.Provide(
	func(cfg *config.Config) (*Store, error) {
		return NewStore(cfg.MediaRoot)
	},
	func(s *Store) usecase.AttachmentStore { return s },
)
