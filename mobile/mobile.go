//go:build mobile

// Package mobile is the ebitenmobile binding entry point for Android (.aar)
// and iOS (.xcframework) builds. It only compiles with -tags mobile:
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.cardash -o build/android/cardash.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Cardash.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/cardash/pkg/app"
	"github.com/decker502/cardash/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	dashboard, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("dashboard init failed: %v", err)
	}

	mobile.SetGame(dashboard)
}

// Dummy is an empty export so ebitenmobile recognises the package.
func Dummy() {}
