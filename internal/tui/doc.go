// Package tui implements the terminal user interface of the client binary.
//
// The UI is a set of bubbletea screens dispatched from a single root model:
// welcome, login and register during authentication, then post list, post
// detail and the post form once a session is established. Mutations are
// optimistic: the form submits to the post controller and returns to the
// list immediately, and the eventual server outcome arrives through the
// controller's result stream.
package tui
