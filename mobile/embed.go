//go:build mobile

// Mobile builds embed a copy of data/ placed next to this file:
//
//	mkdir -p mobile/data && cp data/dashboard.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/dashboard.yaml
var dataFS embed.FS
