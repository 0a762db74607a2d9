// Package sdlhost runs a session in an SDL2 window using the accelerated
// renderer. It is only built with the sdl build tag.
package sdlhost
