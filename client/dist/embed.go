package clientdist

import _ "embed"

// LandingJS is the thin client. It is served at "/_landing/client.js".
//
//go:embed landing.js
var LandingJS []byte

// LandingCSS is the page stylesheet. It is served at "/_landing/landing.css".
//
//go:embed landing.css
var LandingCSS []byte
