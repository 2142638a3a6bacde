// Package vanillawiring connects the maskformat component to the vanilla
// renderer.
package vanillawiring

import (
	"github.com/goliatone/go-maskfield/components/maskformat"
	"github.com/goliatone/go-maskfield/pkg/renderers/vanilla"
)

// FormatEndpointOption returns a vanilla renderer option pointing the runtime
// script at <basePath><RoutePath> (default: <basePath>/api/mask/format).
func FormatEndpointOption(basePath string, fns ...maskformat.OptionFn) vanilla.Option {
	return vanilla.WithFormatEndpoint(maskformat.MountPath(basePath, fns...))
}
