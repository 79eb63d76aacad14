// Package core creates complete projects.
//
// A project directory holds two halves generated from a template root:
//
//	client/   the frontend variant, copied byte for byte
//	server/   the backend template, relocated into the project package,
//	          rewritten for the chosen versions and features, and extended
//	          with the injected feature sources
//	HELP.md   the stack summary and the commands that start both halves
//
// Creation is all or nothing: a destination that already exists is
// refused, and any failure after the directory was created removes it.
package core
