// Package app contains the core application logic. It defines the App
// struct, its configuration, and the build lifecycle: load the record,
// validate it, resolve plugins and content, merge the theme and apply the
// plugins. It is decoupled from any specific entrypoint like a CLI.
package app
