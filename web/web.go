// Package web embeds the static single-page front end served alongside
// the API.
package web

import "embed"

//go:embed static
var Assets embed.FS
