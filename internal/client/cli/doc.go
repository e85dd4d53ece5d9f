// Package cli implements the interactive Tarot client shell. It is the
// in-process consumer of the authentication core: commands drive the
// controller, the prompt reflects the session store, and the open command
// evaluates the route guards the web pages use.
package cli
