//go:build ebiten

package main

import _ "stochlife/internal/hosts/ebitenhost"
