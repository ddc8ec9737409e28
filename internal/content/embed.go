package content

import "embed"

//go:embed packs/*.yaml
var packFS embed.FS
