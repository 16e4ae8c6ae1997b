// ABOUTME: Embeds the report template and legend into the binary
// ABOUTME: Provides templateFS and legendMD for rendering at runtime

package report

import "embed"

//go:embed templates/report.html
var templateFS embed.FS

//go:embed docs/legend.md
var legendMD []byte
