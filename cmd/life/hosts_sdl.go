//go:build sdl

package main

import _ "stochlife/internal/hosts/sdlhost"
