package go_radix_tree

import "go.uber.org/zap"

type OptionFn func(*options)

type options struct {
	// logger receives debug records about structural changes. Defaults to the
	// global zap logger, which discards everything unless replaced.
	logger *zap.Logger

	// findMode decides whether Find accepts a prefix ending inside an edge label.
	findMode FindMode

	// compaction merges a node left with no value and a single edge into its
	// parent edge after a removal. Without it, removal only prunes empty nodes.
	compaction bool
}

func defaultOptions() options {
	return options{
		logger:     zap.L(),
		findMode:   FindRelaxed,
		compaction: false,
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithFindMode(mode FindMode) OptionFn {
	return func(o *options) {
		o.findMode = mode
	}
}

func WithCompaction(enabled bool) OptionFn {
	return func(o *options) {
		o.compaction = enabled
	}
}
