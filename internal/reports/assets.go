package reports

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/samber/lo"
)

// MinifyScript transpiles page JavaScript to ES2015, minified unless debug
// is set
func MinifyScript(src string, debug bool) (string, error) {
	result := api.Transform(src, api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2015,
		MinifyWhitespace:  !debug,
		MinifyIdentifiers: !debug,
		MinifySyntax:      !debug,
	})
	if len(result.Errors) > 0 {
		msgs := lo.Map(result.Errors, func(m api.Message, _ int) string { return m.Text })
		return "", fmt.Errorf("failed to minify script: %s", strings.Join(msgs, "; "))
	}
	return string(result.Code), nil
}
