//go:build !mobile

// Package mobile only carries code with -tags mobile; see mobile.go.
package mobile

// Dummy keeps the package referable in desktop builds.
func Dummy() {}
