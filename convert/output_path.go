package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"hdc/config"
	"hdc/state"
)

const outputExtension = ".docx"

// buildOutputPath derives the output file path from the source name and
// destination directory, cleaning the name and transliterating it when
// requested.
func buildOutputPath(src, dst string, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if src == "-" {
		baseName = "document"
	}
	if env.Cfg.Document.FileNameTransliterate {
		baseName = slug.Make(baseName)
	}
	return filepath.Join(dst, config.CleanFileName(baseName)+outputExtension)
}
