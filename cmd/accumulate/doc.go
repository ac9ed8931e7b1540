// Package main provides a demo program that builds a population of compartments,
// orders and reduces it through non-owning views, and accumulates the membrane
// area concurrently through the atomic adder selected for this machine.
package main
