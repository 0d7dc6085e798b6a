// Package registry provides the glue between plugin references in a
// configuration and the compiled Go plugins that implement them.
//
// Modules register their plugins under the reference users write in the
// configuration (e.g. "@tailwindcss/forms"). A build resolves its plugin list
// against the registry, failing on any reference that is not installed, and
// then applies the plugins in listed order to the token table. Registering
// the same reference twice is a programmer error and panics.
package registry
