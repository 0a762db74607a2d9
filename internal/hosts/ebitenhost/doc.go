// Package ebitenhost runs a session in an ebiten window. It is only built
// with the ebiten build tag; without it the package is empty.
package ebitenhost
