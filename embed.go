package cmsconsole

import "embed"

// EmbeddedAssets contains the static assets served under /public/:
// console.js and console.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
